package sqlite

import (
	"time"

	"SmartMedia/models"
)

// InsertImage 写入一条生成记录，created_time 取服务端本地时间
func InsertImage(img *models.Image) error {
	img.CreatedTime = time.Now().Format("2006-01-02 15:04:05")
	sqlStr := `INSERT INTO images(user_id, prompt, url, type, source_image, created_time) VALUES(?, ?, ?, ?, ?, ?)`
	result, err := Db.Exec(sqlStr, img.UserID, img.Prompt, img.URL, img.Type, img.SourceImage, img.CreatedTime)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	img.ID = uint64(id)
	return nil
}

// GetImagesByUser 查询某个用户的生成历史，最新的在前
// keyword 非空时按提示词包含关系过滤；sqlite 的 LIKE 不区分大小写，
// 这里用 instr 保证区分大小写的子串匹配
func GetImagesByUser(userID uint64, keyword string) ([]models.Image, error) {
	images := make([]models.Image, 0)
	var err error
	if keyword == "" {
		sqlStr := `SELECT id, user_id, prompt, url, type, source_image, created_time
		           FROM images WHERE user_id = ? ORDER BY id DESC`
		err = Db.Select(&images, sqlStr, userID)
	} else {
		sqlStr := `SELECT id, user_id, prompt, url, type, source_image, created_time
		           FROM images WHERE user_id = ? AND instr(prompt, ?) > 0 ORDER BY id DESC`
		err = Db.Select(&images, sqlStr, userID, keyword)
	}
	return images, err
}

// GetImageByID 按主键查询记录，未命中返回 sql.ErrNoRows
func GetImageByID(id uint64) (*models.Image, error) {
	img := &models.Image{}
	sqlStr := `SELECT id, user_id, prompt, url, type, source_image, created_time FROM images WHERE id = ?`
	if err := Db.Get(img, sqlStr, id); err != nil {
		return nil, err
	}
	return img, nil
}

// DeleteImage 按主键删除记录
func DeleteImage(id uint64) error {
	_, err := Db.Exec("DELETE FROM images WHERE id = ?", id)
	return err
}
