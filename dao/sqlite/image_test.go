package sqlite

import (
	"database/sql"
	"path/filepath"
	"testing"

	"SmartMedia/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, Init(filepath.Join(t.TempDir(), "test.db")))
	t.Cleanup(Close)
}

func insertTestImage(t *testing.T, userID uint64, prompt, url string) *models.Image {
	t.Helper()
	img := &models.Image{
		UserID: userID,
		Prompt: prompt,
		URL:    url,
		Type:   models.TypeText2Img,
	}
	require.NoError(t, InsertImage(img))
	return img
}

func TestInsertAndGetImage(t *testing.T) {
	setupTestDB(t)

	img := insertTestImage(t, 1, "a red fox", "/pic/fox.png")
	require.NotZero(t, img.ID)
	require.NotEmpty(t, img.CreatedTime)

	got, err := GetImageByID(img.ID)
	require.NoError(t, err)
	assert.Equal(t, img.Prompt, got.Prompt)
	assert.Equal(t, img.URL, got.URL)
	assert.Equal(t, uint64(1), got.UserID)
	assert.Equal(t, models.TypeText2Img, got.Type)
}

func TestHistoryScopeAndOrder(t *testing.T) {
	setupTestDB(t)

	insertTestImage(t, 1, "first prompt", "/pic/1.png")
	insertTestImage(t, 1, "second prompt", "/pic/2.png")
	insertTestImage(t, 2, "other user", "/pic/3.png")

	// 用户1只能看到自己的两条，最新的在前
	images, err := GetImagesByUser(1, "")
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "second prompt", images[0].Prompt)
	assert.Equal(t, "first prompt", images[1].Prompt)

	images, err = GetImagesByUser(2, "")
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "other user", images[0].Prompt)

	images, err = GetImagesByUser(3, "")
	require.NoError(t, err)
	assert.Empty(t, images)
}

func TestHistoryKeywordSearch(t *testing.T) {
	setupTestDB(t)

	insertTestImage(t, 1, "a red fox", "/pic/fox.png")
	insertTestImage(t, 1, "a blue sky", "/pic/sky.png")

	images, err := GetImagesByUser(1, "red")
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "a red fox", images[0].Prompt)

	// 子串匹配区分大小写
	images, err = GetImagesByUser(1, "RED")
	require.NoError(t, err)
	assert.Empty(t, images)
}

func TestDeleteImage(t *testing.T) {
	setupTestDB(t)

	img := insertTestImage(t, 1, "to be deleted", "/pic/gone.png")
	require.NoError(t, DeleteImage(img.ID))

	_, err := GetImageByID(img.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	// 删除不存在的ID不报错
	assert.NoError(t, DeleteImage(img.ID))
}
