package utils

import (
	"github.com/speps/go-hashids/v2"
)

// GenReferralCode 用 hashid 把用户ID编成对外分享的邀请码
// 同一盐值下可逆，解码用于注册时定位邀请人
func GenReferralCode(salt string, id uint64) string {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 8
	h, _ := hashids.NewWithData(hd)
	e, _ := h.EncodeInt64([]int64{int64(id)})
	return e
}

// DecodeReferralCode 邀请码还原为用户ID，非法码返回 0
func DecodeReferralCode(salt string, code string) uint64 {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 8
	h, _ := hashids.NewWithData(hd)
	ids, err := h.DecodeInt64WithError(code)
	if err != nil || len(ids) == 0 || ids[0] <= 0 {
		return 0
	}
	return uint64(ids[0])
}
