// Copyright (c) 2026 Kasane. All rights reserved.

package reference

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasaneapp/kasane/pkg/pointer"
)

type fakeRepo struct {
	genreCalls      int
	tagCalls        int
	serieCalls      int
	collectionCalls int

	tagTypes []TagType

	createdTag   *Tag
	createdSerie *Serie
}

func (f *fakeRepo) ListGenres(context.Context) ([]*Genre, error) {
	f.genreCalls++
	return []*Genre{{ID: 1, Name: "Action"}}, nil
}

func (f *fakeRepo) ListTags(_ context.Context, tagType TagType) ([]*Tag, error) {
	f.tagCalls++
	f.tagTypes = append(f.tagTypes, tagType)
	return []*Tag{{ID: 1, Name: "Isekai", Type: tagType}}, nil
}

func (f *fakeRepo) ListSeries(context.Context) ([]*Serie, error) {
	f.serieCalls++
	return []*Serie{{ID: 1, Name: "Kage"}}, nil
}

func (f *fakeRepo) ListCollections(context.Context) ([]*Collection, error) {
	f.collectionCalls++
	return []*Collection{}, nil
}

func (f *fakeRepo) CreateSerie(_ context.Context, serie *Serie) error {
	f.createdSerie = serie
	return nil
}

func (f *fakeRepo) CreateTag(_ context.Context, tag *Tag) error {
	f.createdTag = tag
	return nil
}

func (f *fakeRepo) CreateGenre(context.Context, *Genre) error { return nil }

func TestListEntities_RequestedGroupsOnly(t *testing.T) {
	repo := &fakeRepo{}
	service := NewService(repo)

	entities, err := service.ListEntities(context.Background(), []string{"genres", "series"})
	require.NoError(t, err)

	assert.NotNil(t, entities.Genres)
	assert.NotNil(t, entities.Series)
	assert.Nil(t, entities.Tags)
	assert.Nil(t, entities.Persons)
	assert.Nil(t, entities.Collections)

	assert.Equal(t, 1, repo.genreCalls)
	assert.Equal(t, 1, repo.serieCalls)
	assert.Equal(t, 0, repo.tagCalls)
	assert.Equal(t, 0, repo.collectionCalls)
}

func TestListEntities_TagsAndPersonsAreDistinctRoles(t *testing.T) {
	repo := &fakeRepo{}
	service := NewService(repo)

	entities, err := service.ListEntities(context.Background(), []string{"tags", "persons"})
	require.NoError(t, err)

	assert.NotNil(t, entities.Tags)
	assert.NotNil(t, entities.Persons)
	assert.Equal(t, 2, repo.tagCalls)
	assert.ElementsMatch(t, []TagType{TagGeneral, TagPerson}, repo.tagTypes)
}

func TestListEntities_UnknownGroupsDropped(t *testing.T) {
	repo := &fakeRepo{}
	service := NewService(repo)

	entities, err := service.ListEntities(context.Background(), []string{"genres", "chapters", "genres"})
	require.NoError(t, err)

	assert.NotNil(t, entities.Genres)
	assert.Equal(t, 1, repo.genreCalls)
}

func TestListEntities_NoKnownGroupFails(t *testing.T) {
	service := NewService(&fakeRepo{})

	_, err := service.ListEntities(context.Background(), []string{"chapters"})
	assert.Error(t, err)

	_, err = service.ListEntities(context.Background(), nil)
	assert.Error(t, err)
}

func TestCreateTag_DefaultsToGeneral(t *testing.T) {
	repo := &fakeRepo{}
	service := NewService(repo)

	tag := &Tag{Name: "Isekai"}
	require.NoError(t, service.CreateTag(context.Background(), tag))

	assert.Equal(t, TagGeneral, repo.createdTag.Type)
}

func TestCreateTag_PersonWithSerie(t *testing.T) {
	repo := &fakeRepo{}
	service := NewService(repo)

	tag := &Tag{Name: "Aoyama Gosho", Type: TagPerson, SerieID: pointer.To(int64(7))}
	require.NoError(t, service.CreateTag(context.Background(), tag))

	assert.Equal(t, TagPerson, repo.createdTag.Type)
}

func TestCreateTag_RejectsUnknownRole(t *testing.T) {
	service := NewService(&fakeRepo{})

	err := service.CreateTag(context.Background(), &Tag{Name: "X", Type: TagType("GROUP")})
	assert.Error(t, err)
}

func TestCreateSerie_RequiresName(t *testing.T) {
	service := NewService(&fakeRepo{})

	err := service.CreateSerie(context.Background(), &Serie{})
	assert.Error(t, err)
}
