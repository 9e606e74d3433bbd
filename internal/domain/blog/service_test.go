// internal/domain/blog/service_test.go
package blog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUnfiltered(t *testing.T) {
	svc := NewService()

	all := svc.List("", "")
	assert.Len(t, all, len(posts))
	assert.Equal(t, all, svc.List("", "All"))
}

func TestListByCategory(t *testing.T) {
	svc := NewService()

	got := svc.List("", "Medication Safety")
	require.NotEmpty(t, got)
	for _, p := range got {
		assert.Equal(t, "Medication Safety", p.Category)
	}
}

func TestListBySearch(t *testing.T) {
	svc := NewService()

	got := svc.List("ANTIBIOTIC", "")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	// tag match
	got = svc.List("insulin", "")
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)

	assert.Empty(t, svc.List("homeopathy", ""))
}

func TestListSearchAndCategoryCombine(t *testing.T) {
	svc := NewService()

	assert.Len(t, svc.List("vitamin", "Nutrition"), 1)
	assert.Empty(t, svc.List("vitamin", "Wellness"))
}

func TestGet(t *testing.T) {
	svc := NewService()

	post, err := svc.Get("2")
	require.NoError(t, err)
	assert.Contains(t, post.Title, "Vitamin D")

	_, err = svc.Get("999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoriesStartWithAll(t *testing.T) {
	svc := NewService()

	cats := svc.Categories()
	require.NotEmpty(t, cats)
	assert.Equal(t, "All", cats[0])

	// returned slice is a copy
	cats[0] = "mutated"
	assert.Equal(t, "All", svc.Categories()[0])
}
