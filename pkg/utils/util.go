package utils

import (
	"github.com/speps/go-hashids/v2"
)

// GenShareCode 生成用户主页分享码
func GenShareCode(salt string, id uint64) string {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 12
	h, _ := hashids.NewWithData(hd)
	e, _ := h.EncodeInt64([]int64{int64(id)})
	return e
}
