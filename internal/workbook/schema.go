package workbook

const schemaSQL = `
CREATE TABLE IF NOT EXISTS worksheets (
    name        TEXT PRIMARY KEY,
    created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS cells (
    sheet  TEXT NOT NULL REFERENCES worksheets(name) ON DELETE CASCADE,
    row    INTEGER NOT NULL,
    col    INTEGER NOT NULL,
    value  TEXT NOT NULL,
    PRIMARY KEY (sheet, row, col)
);

CREATE INDEX IF NOT EXISTS idx_cells_sheet ON cells(sheet);
`
