package cache

import (
	"fmt"
	"time"
)

const (
	PostKeyPrefix    = "post:%d"
	PostKeyPattern   = "post:*"
	CategoriesAllKey = "categories:all"
)

const (
	PostTTL = 30 * time.Minute
	ListTTL = 5 * time.Minute
)

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}
