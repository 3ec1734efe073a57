package database

import "time"

type MigrationId int64

type Migration struct {
	Id MigrationId `db:"id"`
}

type Meme struct {
	Id           string    `db:"id"`
	ImageName    string    `db:"image_name"`
	TopText      string    `db:"top_text"`
	BottomText   string    `db:"bottom_text"`
	CanvasWidth  int       `db:"canvas_width"`
	CanvasHeight int       `db:"canvas_height"`
	FileName     string    `db:"file_name"`
	CreatedTime  time.Time `db:"created_timestamp"`
}
