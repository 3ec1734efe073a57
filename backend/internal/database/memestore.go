package database

import (
	"errors"
	"fmt"
	"github.com/upper/db/v4"
	"vincit.fi/meme-generator/api"
	"vincit.fi/meme-generator/api/apitype"
	"vincit.fi/meme-generator/common/logger"
)

type MemeStore struct {
	database   *Database
	collection db.Collection

	api.MemeStore
}

func NewMemeStore(database *Database) *MemeStore {
	return &MemeStore{
		database: database,
	}
}

func (s *MemeStore) getCollection() db.Collection {
	if s.collection == nil {
		s.collection = s.database.Session().Collection("meme")
	}
	return s.collection
}

func (s *MemeStore) AddMeme(meme *apitype.Meme) error {
	logger.Debug.Printf("Storing meme %s", meme.Id)
	if _, err := s.getCollection().Insert(toDbMeme(meme)); err != nil {
		return fmt.Errorf("storing meme %s: %w", meme.Id, err)
	}
	return nil
}

func (s *MemeStore) GetMemeById(id apitype.MemeId) (*apitype.Meme, error) {
	var meme Meme
	if err := s.getCollection().Find(db.Cond{"id": string(id)}).One(&meme); err != nil {
		if errors.Is(err, db.ErrNoMoreRows) {
			return nil, fmt.Errorf("meme %s: %w", id, api.ErrNotFound)
		}
		return nil, err
	}
	return toApiMeme(&meme), nil
}

func (s *MemeStore) GetLatestMemes(limit int) ([]*apitype.Meme, error) {
	var memes []Meme
	res := s.getCollection().Find().OrderBy("-created_timestamp", "-id")
	if limit > 0 {
		res = res.Limit(limit)
	}
	if err := res.All(&memes); err != nil {
		return nil, err
	}
	return toApiMemes(memes), nil
}

func toDbMeme(meme *apitype.Meme) *Meme {
	return &Meme{
		Id:           string(meme.Id),
		ImageName:    meme.ImageName,
		TopText:      meme.TopText,
		BottomText:   meme.BottomText,
		CanvasWidth:  meme.CanvasWidth,
		CanvasHeight: meme.CanvasHeight,
		FileName:     meme.FileName,
		CreatedTime:  meme.Created,
	}
}

func toApiMeme(meme *Meme) *apitype.Meme {
	return &apitype.Meme{
		Id:           apitype.MemeId(meme.Id),
		ImageName:    meme.ImageName,
		TopText:      meme.TopText,
		BottomText:   meme.BottomText,
		CanvasWidth:  meme.CanvasWidth,
		CanvasHeight: meme.CanvasHeight,
		FileName:     meme.FileName,
		Created:      meme.CreatedTime,
	}
}

func toApiMemes(memes []Meme) []*apitype.Meme {
	apiMemes := make([]*apitype.Meme, len(memes))
	for i := range memes {
		apiMemes[i] = toApiMeme(&memes[i])
	}
	return apiMemes
}
