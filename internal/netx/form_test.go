package netx

import (
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func parseForm(t *testing.T, body io.Reader, contentType string) *multipart.Reader {
	t.Helper()
	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	require.NotEmpty(t, params["boundary"])
	return multipart.NewReader(body, params["boundary"])
}

func TestForm_FieldsAndJSONRoundTrip(t *testing.T) {
	body, contentType, err := NewForm().
		Field("username", "alice").
		Field("user_role", "Admin").
		JSONField("location", map[string]string{"city": "Hanoi", "district": "Cau Giay"}).
		Close()
	require.NoError(t, err)

	mr := parseForm(t, body, contentType)

	got := map[string]string{}
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(part)
		require.NoError(t, err)
		got[part.FormName()] = string(data)
	}

	require.Equal(t, "alice", got["username"])
	require.Equal(t, "Admin", got["user_role"])
	require.JSONEq(t, `{"city":"Hanoi","district":"Cau Giay"}`, got["location"])
}

func TestForm_FilePartCarriesFilenameAndType(t *testing.T) {
	dir := t.TempDir()
	png := append([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, make([]byte, 16)...)
	path := filepath.Join(dir, "avatar.png")
	require.NoError(t, os.WriteFile(path, png, 0o600))

	body, contentType, err := NewForm().
		Field("username", "bob").
		File("avatar", path).
		Close()
	require.NoError(t, err)

	mr := parseForm(t, body, contentType)

	part, err := mr.NextPart()
	require.NoError(t, err)
	require.Equal(t, "username", part.FormName())

	part, err = mr.NextPart()
	require.NoError(t, err)
	require.Equal(t, "avatar", part.FormName())
	require.Equal(t, "avatar.png", part.FileName())
	require.Equal(t, "image/png", part.Header.Get("Content-Type"))

	data, err := io.ReadAll(part)
	require.NoError(t, err)
	require.Equal(t, png, data)
}

func TestForm_MissingFileSurfacesOnClose(t *testing.T) {
	_, _, err := NewForm().
		Field("username", "bob").
		File("avatar", filepath.Join(t.TempDir(), "missing.png")).
		Close()
	require.Error(t, err)
}
