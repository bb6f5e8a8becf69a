package languages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSortsCaseInsensitively(t *testing.T) {
	c := New([]string{"spanish", "English", "chinese", "Arabic", "Éwé"})

	assert.Equal(t, []string{"Arabic", "chinese", "English", "Éwé", "spanish"}, c.Names())
}

func TestNewKeepsDuplicates(t *testing.T) {
	c := New([]string{"French", "English", "French"})

	assert.Equal(t, []string{"English", "French", "French"}, c.Names())
	assert.Equal(t, 3, c.Len())
}

func TestNewDoesNotMutateInput(t *testing.T) {
	input := []string{"German", "Dutch"}
	New(input)

	assert.Equal(t, []string{"German", "Dutch"}, input)
}

func TestSortingIsIdempotent(t *testing.T) {
	first := Default().Names()
	again := New(first).Names()

	assert.Equal(t, first, again)
}

func TestNamesReturnsCopy(t *testing.T) {
	c := New([]string{"Korean", "Japanese"})
	names := c.Names()
	names[0] = "Klingon"

	assert.Equal(t, "Japanese", c.Names()[0])
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	require.Greater(t, c.Len(), 50)
	assert.True(t, c.Contains("Chinese"))
	assert.True(t, c.Contains("English"))
	assert.False(t, c.Contains("english"), "Contains 是精确匹配")
	assert.Same(t, c, Default())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    []string
		wantErr bool
	}{
		{
			name: "正常数据",
			data: `{"langs":[{"name":"Thai"},{"name":"Greek"}]}`,
			want: []string{"Greek", "Thai"},
		},
		{
			name: "空列表",
			data: `{"langs":[]}`,
			want: []string{},
		},
		{
			name:    "非法JSON",
			data:    `{"langs":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Names())
		})
	}
}
