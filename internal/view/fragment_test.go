package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFragment_Builders(t *testing.T) {
	f := El("card",
		Text("title", "Alpha"),
		El("body").WithAttr("tone", "info"),
	).WithAttr("id", "1")

	assert.Equal(t, "card", f.Kind)
	assert.Equal(t, "1", f.Attrs["id"])
	require.Len(t, f.Children, 2)
	assert.Equal(t, "Alpha", f.Children[0].Text)
}

func TestFragment_Find(t *testing.T) {
	f := El("page",
		El("section",
			Text("title", "deep"),
		),
	)

	found := f.Find("title")
	require.NotNil(t, found)
	assert.Equal(t, "deep", found.Text)

	assert.Nil(t, f.Find("missing"))
	assert.Nil(t, (*Fragment)(nil).Find("title"))
}
