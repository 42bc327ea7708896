package query

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	dergidomain "github.com/ttkcys/milliyetciler/internal/dergi/domain"
	dergiquery "github.com/ttkcys/milliyetciler/internal/dergi/usecase/query"
	sayidomain "github.com/ttkcys/milliyetciler/internal/sayi/domain"
	sayiquery "github.com/ttkcys/milliyetciler/internal/sayi/usecase/query"
	yazardomain "github.com/ttkcys/milliyetciler/internal/yazar/domain"
	yazarquery "github.com/ttkcys/milliyetciler/internal/yazar/usecase/query"
	yazidomain "github.com/ttkcys/milliyetciler/internal/yazi/domain"
	yaziquery "github.com/ttkcys/milliyetciler/internal/yazi/usecase/query"
)

type fakeDergiRepo struct {
	dergis []dergidomain.Dergi
	err    error
}

func (f *fakeDergiRepo) Create(ctx context.Context, d *dergidomain.Dergi) error { return nil }
func (f *fakeDergiRepo) FindByID(ctx context.Context, id uint) (*dergidomain.Dergi, error) {
	return nil, nil
}
func (f *fakeDergiRepo) FindAll(ctx context.Context, filter dergidomain.ListFilter) ([]dergidomain.Dergi, error) {
	return f.dergis, f.err
}
func (f *fakeDergiRepo) Count(ctx context.Context, filter dergidomain.ListFilter) (int64, error) {
	return int64(len(f.dergis)), f.err
}
func (f *fakeDergiRepo) Update(ctx context.Context, d *dergidomain.Dergi) error { return nil }
func (f *fakeDergiRepo) Delete(ctx context.Context, id uint) error              { return nil }

type fakeSayiRepo struct {
	sayis []sayidomain.Sayi
	err   error
}

func (f *fakeSayiRepo) Create(ctx context.Context, s *sayidomain.Sayi) error { return nil }
func (f *fakeSayiRepo) FindByID(ctx context.Context, id uint) (*sayidomain.Sayi, error) {
	return nil, nil
}
func (f *fakeSayiRepo) FindAll(ctx context.Context, filter sayidomain.ListFilter) ([]sayidomain.Sayi, error) {
	return f.sayis, f.err
}
func (f *fakeSayiRepo) Count(ctx context.Context, filter sayidomain.ListFilter) (int64, error) {
	return int64(len(f.sayis)), f.err
}
func (f *fakeSayiRepo) Update(ctx context.Context, s *sayidomain.Sayi) error { return nil }
func (f *fakeSayiRepo) Delete(ctx context.Context, id uint) error            { return nil }

type fakeYazarRepo struct {
	yazars []yazardomain.Yazar
	err    error
}

func (f *fakeYazarRepo) Create(ctx context.Context, y *yazardomain.Yazar) error { return nil }
func (f *fakeYazarRepo) FindByID(ctx context.Context, id uint) (*yazardomain.Yazar, error) {
	return nil, nil
}
func (f *fakeYazarRepo) FindAll(ctx context.Context, filter yazardomain.ListFilter) ([]yazardomain.Yazar, error) {
	return f.yazars, f.err
}
func (f *fakeYazarRepo) Count(ctx context.Context, filter yazardomain.ListFilter) (int64, error) {
	return int64(len(f.yazars)), f.err
}
func (f *fakeYazarRepo) Update(ctx context.Context, y *yazardomain.Yazar) error { return nil }
func (f *fakeYazarRepo) Delete(ctx context.Context, id uint) error              { return nil }

type fakeYaziRepo struct {
	yazis []yazidomain.YaziWithMeta
	err   error
}

func (f *fakeYaziRepo) Create(ctx context.Context, y *yazidomain.Yazi) error { return nil }
func (f *fakeYaziRepo) FindByID(ctx context.Context, id uint) (*yazidomain.Yazi, error) {
	return nil, nil
}
func (f *fakeYaziRepo) FindAllWithMeta(ctx context.Context, filter yazidomain.ListFilter) ([]yazidomain.YaziWithMeta, error) {
	return f.yazis, f.err
}
func (f *fakeYaziRepo) Count(ctx context.Context, filter yazidomain.ListFilter) (int64, error) {
	return int64(len(f.yazis)), f.err
}
func (f *fakeYaziRepo) Update(ctx context.Context, y *yazidomain.Yazi) error { return nil }
func (f *fakeYaziRepo) Delete(ctx context.Context, id uint) error            { return nil }

func newTestHandler(dergi *fakeDergiRepo, sayi *fakeSayiRepo, yazar *fakeYazarRepo, yazi *fakeYaziRepo) *SearchHandler {
	return NewSearchHandler(
		dergiquery.NewListDergisHandler(dergi),
		sayiquery.NewListSayisHandler(sayi),
		yazarquery.NewListYazarsHandler(yazar),
		yaziquery.NewListYazisHandler(yazi),
		time.Second,
		50,
	)
}

func TestSearchMergesAllFacets(t *testing.T) {
	handler := newTestHandler(
		&fakeDergiRepo{dergis: []dergidomain.Dergi{{ID: 1, Isim: "Orkun"}}},
		&fakeSayiRepo{sayis: []sayidomain.Sayi{{ID: 2, SayiNum: "3"}}},
		&fakeYazarRepo{yazars: []yazardomain.Yazar{{ID: 3, Isim: "Ali"}}},
		&fakeYaziRepo{},
	)

	result := handler.Handle(context.Background(), SearchQuery{Term: "orkun"})

	assert.Equal(t, 0, result.Errors)
	assert.Equal(t, int64(1), result.Dergis.Total)
	assert.Equal(t, int64(1), result.Sayis.Total)
	assert.Equal(t, int64(1), result.Yazars.Total)
	assert.Equal(t, int64(0), result.Yazis.Total)
}

func TestSearchFacetFailureDegrades(t *testing.T) {
	handler := newTestHandler(
		&fakeDergiRepo{err: errors.New("table gone")},
		&fakeSayiRepo{sayis: []sayidomain.Sayi{{ID: 2, SayiNum: "3"}}},
		&fakeYazarRepo{},
		&fakeYaziRepo{err: errors.New("join failed")},
	)

	result := handler.Handle(context.Background(), SearchQuery{Term: "x"})

	assert.Equal(t, 2, result.Errors)
	assert.Equal(t, int64(0), result.Dergis.Total)
	assert.Equal(t, int64(1), result.Sayis.Total, "healthy facets still answer")
}
