package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS profile (
    id               INTEGER PRIMARY KEY CHECK (id = 1),
    income           REAL NOT NULL,
    period           TEXT NOT NULL,
    savings_now      REAL NOT NULL,
    target           REAL,
    duration_amount  REAL,
    duration_unit    TEXT,
    currency         TEXT NOT NULL,
    updated_at       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS conversation (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    sender    TEXT NOT NULL,
    text      TEXT NOT NULL,
    ts        TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
    id           TEXT PRIMARY KEY,
    description  TEXT NOT NULL,
    amount       REAL NOT NULL,
    category     TEXT NOT NULL,
    ts           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS wishlist (
    id     TEXT PRIMARY KEY,
    name   TEXT NOT NULL,
    price  REAL NOT NULL,
    ts     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS vocab (
    phrase  TEXT PRIMARY KEY,
    value   REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS income_samples (
    id      INTEGER PRIMARY KEY AUTOINCREMENT,
    amount  REAL NOT NULL,
    ts      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_ts ON transactions(ts);
CREATE INDEX IF NOT EXISTS idx_conversation_ts ON conversation(ts);
`
