package store

import (
	"encoding/json"
	"errors"

	"tresnow/internal/model"
)

// favouritesKey mirrors the localStorage entry the SPA used.
const favouritesKey = "tres-favourites"

// Favourites holds persisted copies of articles, keyed by article ID. The
// set never contains duplicate IDs; Add and Remove are both idempotent.
type Favourites struct {
	kv KV
}

func NewFavourites(kv KV) *Favourites {
	return &Favourites{kv: kv}
}

func (f *Favourites) List() ([]model.Article, error) {
	raw, err := f.kv.Get(favouritesKey)
	if errors.Is(err, ErrKeyNotFound) {
		return []model.Article{}, nil
	}
	if err != nil {
		return nil, err
	}

	var articles []model.Article
	if err := json.Unmarshal(raw, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// Add saves the article unless it is already present.
func (f *Favourites) Add(article model.Article) error {
	articles, err := f.List()
	if err != nil {
		return err
	}
	for _, a := range articles {
		if a.ID == article.ID {
			return nil
		}
	}
	return f.write(append(articles, article))
}

// Remove drops the article with the given ID. Removing an absent ID is a
// no-op.
func (f *Favourites) Remove(id string) error {
	articles, err := f.List()
	if err != nil {
		return err
	}

	kept := articles[:0]
	for _, a := range articles {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(articles) {
		return nil
	}
	return f.write(kept)
}

func (f *Favourites) IsFavourite(id string) (bool, error) {
	articles, err := f.List()
	if err != nil {
		return false, err
	}
	for _, a := range articles {
		if a.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *Favourites) write(articles []model.Article) error {
	data, err := json.Marshal(articles)
	if err != nil {
		return err
	}
	return f.kv.Set(favouritesKey, data)
}
