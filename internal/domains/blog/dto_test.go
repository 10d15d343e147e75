package blog

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_UnmarshalJSON(t *testing.T) {
	t.Run("single string becomes a singleton list", func(t *testing.T) {
		var s StringList
		require.NoError(t, json.Unmarshal([]byte(`"go"`), &s))
		assert.Equal(t, StringList{"go"}, s)
	})

	t.Run("array is copied", func(t *testing.T) {
		var s StringList
		require.NoError(t, json.Unmarshal([]byte(`["a","b"]`), &s))
		assert.Equal(t, StringList{"a", "b"}, s)
	})

	t.Run("null yields nil", func(t *testing.T) {
		var s StringList
		require.NoError(t, json.Unmarshal([]byte(`null`), &s))
		assert.Nil(t, s)
	})

	t.Run("other shapes are rejected, not dropped", func(t *testing.T) {
		var s StringList
		assert.Error(t, json.Unmarshal([]byte(`123`), &s))
		assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &s))
		assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &s))
	})
}

func TestStringList_Normalized(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, StringList{" a ", "b", "  "}.Normalized())
	assert.Nil(t, StringList{}.Normalized())
	assert.Nil(t, StringList{"   "}.Normalized())
}

func TestCreateBlogRequest_DecodesScalarTags(t *testing.T) {
	var req CreateBlogRequest
	payload := `{"title":"t","body":"b","authorId":"x","category":"tech","tags":"go"}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	assert.Equal(t, StringList{"go"}, req.Tags)
}

func TestCreateBlogRequest_ValidationOrder(t *testing.T) {
	authorID := uuid.NewString()

	valid := CreateBlogRequest{
		Title:    "A title",
		Body:     "A body",
		AuthorID: authorID,
		Category: "tech",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(*CreateBlogRequest)
		wantMsg string
	}{
		{
			name:    "missing title first",
			mutate:  func(r *CreateBlogRequest) { *r = CreateBlogRequest{} },
			wantMsg: "Blog title is required",
		},
		{
			name:    "missing body",
			mutate:  func(r *CreateBlogRequest) { r.Body = "" },
			wantMsg: "Blog body is required",
		},
		{
			name:    "missing authorId",
			mutate:  func(r *CreateBlogRequest) { r.AuthorID = "" },
			wantMsg: "authorId is required",
		},
		{
			name:    "malformed authorId",
			mutate:  func(r *CreateBlogRequest) { r.AuthorID = "abc123" },
			wantMsg: "abc123 is invalid",
		},
		{
			name:    "missing category",
			mutate:  func(r *CreateBlogRequest) { r.Category = "" },
			wantMsg: "Blog category is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestUpdateBlogRequest_IsEmpty(t *testing.T) {
	assert.True(t, UpdateBlogRequest{}.IsEmpty())
	assert.True(t, UpdateBlogRequest{Title: "   "}.IsEmpty())

	published := false
	assert.False(t, UpdateBlogRequest{IsPublished: &published}.IsEmpty(),
		"an explicit false still counts as a change")
	assert.False(t, UpdateBlogRequest{Tags: StringList{"a"}}.IsEmpty())
	assert.False(t, UpdateBlogRequest{Title: "new"}.IsEmpty())
}

func TestListBlogsQuery_Filter(t *testing.T) {
	authorID := uuid.New()

	t.Run("comma-separated lists are split and trimmed", func(t *testing.T) {
		f := ListBlogsQuery{Tags: " a , b ", Subcategory: "x,y"}.Filter()
		assert.Equal(t, []string{"a", "b"}, f.Tags)
		assert.Equal(t, []string{"x", "y"}, f.Subcategory)
	})

	t.Run("valid authorId applied", func(t *testing.T) {
		f := ListBlogsQuery{AuthorID: authorID.String()}.Filter()
		require.NotNil(t, f.AuthorID)
		assert.Equal(t, authorID, *f.AuthorID)
	})

	t.Run("invalid authorId skipped silently", func(t *testing.T) {
		f := ListBlogsQuery{AuthorID: "not-a-uuid", Category: " tech "}.Filter()
		assert.Nil(t, f.AuthorID)
		assert.Equal(t, "tech", f.Category)
	})
}

func TestDeleteBlogsQuery_Filter(t *testing.T) {
	t.Run("isPublished parsed when valid", func(t *testing.T) {
		f := DeleteBlogsQuery{IsPublished: "true"}.Filter()
		require.NotNil(t, f.IsPublished)
		assert.True(t, *f.IsPublished)

		f = DeleteBlogsQuery{IsPublished: "false"}.Filter()
		require.NotNil(t, f.IsPublished)
		assert.False(t, *f.IsPublished)
	})

	t.Run("invalid isPublished skipped", func(t *testing.T) {
		f := DeleteBlogsQuery{IsPublished: "banana"}.Filter()
		assert.Nil(t, f.IsPublished)
	})

	t.Run("HasAny", func(t *testing.T) {
		assert.False(t, DeleteBlogsQuery{}.HasAny())
		assert.True(t, DeleteBlogsQuery{IsPublished: "true"}.HasAny())
		assert.True(t, DeleteBlogsQuery{ListBlogsQuery: ListBlogsQuery{Category: "tech"}}.HasAny())
	})
}
