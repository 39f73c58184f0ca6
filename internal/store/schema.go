package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS snapshot_meta (
    id              INTEGER PRIMARY KEY CHECK (id = 1),
    fetched_at      TEXT NOT NULL,
    source          TEXT NOT NULL,
    coerced_cells   INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS projects (
    project_id      TEXT PRIMARY KEY,
    name            TEXT NOT NULL,
    event_date      TEXT NOT NULL,
    status          TEXT NOT NULL,
    revenue_target  REAL NOT NULL,
    revenue_actual  REAL NOT NULL,
    speaker_target  INTEGER NOT NULL,
    speaker_actual  INTEGER NOT NULL,
    budget_total    REAL,
    expenses_actual REAL
);

CREATE TABLE IF NOT EXISTS sponsors (
    rowid_ord       INTEGER PRIMARY KEY AUTOINCREMENT,
    name            TEXT NOT NULL,
    project_id      TEXT NOT NULL,
    stage           TEXT NOT NULL,
    value           REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS delegate_logs (
    rowid_ord       INTEGER PRIMARY KEY AUTOINCREMENT,
    date_logged     TEXT NOT NULL,
    project_id      TEXT NOT NULL,
    category        TEXT NOT NULL,
    count           INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS marketing (
    project_id          TEXT PRIMARY KEY,
    emails_sent         INTEGER NOT NULL,
    open_rate           REAL NOT NULL,
    social_posts        INTEGER NOT NULL,
    social_impressions  INTEGER NOT NULL,
    ad_spend            REAL NOT NULL,
    ad_clicks           INTEGER NOT NULL,
    website_visits      INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS expenses (
    rowid_ord       INTEGER PRIMARY KEY AUTOINCREMENT,
    project_id      TEXT NOT NULL,
    category        TEXT NOT NULL,
    amount          REAL NOT NULL,
    description     TEXT
);

CREATE INDEX IF NOT EXISTS idx_sponsors_project ON sponsors(project_id);
CREATE INDEX IF NOT EXISTS idx_delegates_project ON delegate_logs(project_id);
CREATE INDEX IF NOT EXISTS idx_expenses_project ON expenses(project_id);
`
