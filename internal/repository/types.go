package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ProjectFilter 项目列表过滤条件, 各条件为合取
type ProjectFilter struct {
	Status string // 为空不过滤
	Search string // 大小写不敏感子串, 匹配name/description/manager
	Sort   string // constants.Sort* 之一, 为空按创建时间倒序
}

// isNotFound 判断gorm层的未找到错误
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
