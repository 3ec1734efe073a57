package database

import (
	"github.com/stretchr/testify/require"
	"testing"
	"time"
	"vincit.fi/meme-generator/api"
	"vincit.fi/meme-generator/api/apitype"
)

func initMemeStoreTest(t *testing.T) *MemeStore {
	database, err := NewInMemoryDatabase()
	require.Nil(t, err)
	t.Cleanup(func() {
		_ = database.Close()
	})
	return NewMemeStore(database)
}

func newMeme(id string, created time.Time) *apitype.Meme {
	return &apitype.Meme{
		Id:           apitype.MemeId(id),
		ImageName:    "cat.jpg",
		TopText:      "top " + id,
		BottomText:   "bottom " + id,
		CanvasWidth:  400,
		CanvasHeight: 400,
		FileName:     id + ".png",
		Created:      created,
	}
}

func TestMemeStore_AddAndGet(t *testing.T) {
	a := require.New(t)
	sut := initMemeStoreTest(t)

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	a.Nil(sut.AddMeme(newMeme("m1", created)))

	meme, err := sut.GetMemeById("m1")
	a.Nil(err)
	a.Equal(apitype.MemeId("m1"), meme.Id)
	a.Equal("cat.jpg", meme.ImageName)
	a.Equal("top m1", meme.TopText)
	a.Equal("bottom m1", meme.BottomText)
	a.Equal(400, meme.CanvasWidth)
	a.Equal(400, meme.CanvasHeight)
	a.Equal("m1.png", meme.FileName)
	a.True(created.Equal(meme.Created))
}

func TestMemeStore_GetMemeById_NotFound(t *testing.T) {
	a := require.New(t)
	sut := initMemeStoreTest(t)

	meme, err := sut.GetMemeById("missing")
	a.Nil(meme)
	a.ErrorIs(err, api.ErrNotFound)
}

func TestMemeStore_AddMeme_Duplicate(t *testing.T) {
	a := require.New(t)
	sut := initMemeStoreTest(t)

	a.Nil(sut.AddMeme(newMeme("m1", time.Now())))
	a.NotNil(sut.AddMeme(newMeme("m1", time.Now())))
}

func TestMemeStore_GetLatestMemes(t *testing.T) {
	a := require.New(t)
	sut := initMemeStoreTest(t)

	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	a.Nil(sut.AddMeme(newMeme("m1", start)))
	a.Nil(sut.AddMeme(newMeme("m2", start.Add(time.Minute))))
	a.Nil(sut.AddMeme(newMeme("m3", start.Add(2*time.Minute))))

	t.Run("All newest first", func(t *testing.T) {
		memes, err := sut.GetLatestMemes(0)
		a.Nil(err)
		a.Equal(3, len(memes))
		a.Equal(apitype.MemeId("m3"), memes[0].Id)
		a.Equal(apitype.MemeId("m2"), memes[1].Id)
		a.Equal(apitype.MemeId("m1"), memes[2].Id)
	})
	t.Run("Limited", func(t *testing.T) {
		memes, err := sut.GetLatestMemes(2)
		a.Nil(err)
		a.Equal(2, len(memes))
		a.Equal(apitype.MemeId("m3"), memes[0].Id)
	})
}
