package database

type migration struct {
	id          MigrationId
	description string
	query       string
}

var migrations = []migration{
	{
		id:          0,
		description: "Initial Tables",
		query: `
			CREATE TABLE meme (
			    id TEXT PRIMARY KEY,
			    image_name TEXT,
			    top_text TEXT,
			    bottom_text TEXT,
			    canvas_width INT,
			    canvas_height INT,
			    file_name TEXT,
			    created_timestamp DATETIME
			);

			CREATE INDEX meme_created_timestamp_idx ON meme (created_timestamp);
		`,
	},
}
