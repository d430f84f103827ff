package qrcode

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	qr "github.com/skip2/go-qrcode"
)

// 二维码内容固定为 gym:<gymId>:<gymName>，是会员端扫码的唯一互通契约
const payloadPrefix = "gym"

var ErrInvalidFormat = errors.New("二维码格式无效")

// Payload 场馆签到二维码的内容
type Payload struct {
	GymID   int64
	GymName string
}

// BuildPayload 生成二维码内容字符串
func BuildPayload(gymID int64, gymName string) string {
	return fmt.Sprintf("%s:%d:%s", payloadPrefix, gymID, gymName)
}

// ParsePayload 解析扫码结果。要求恰好 3 段冒号分隔且首段为 gym，
// 否则视为格式错误。场馆名中不允许出现冒号。
func ParsePayload(data string) (*Payload, error) {
	parts := strings.Split(data, ":")
	if len(parts) != 3 || parts[0] != payloadPrefix {
		return nil, ErrInvalidFormat
	}

	gymID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, ErrInvalidFormat
	}

	return &Payload{GymID: gymID, GymName: parts[2]}, nil
}

// Encode 把内容渲染为 256x256 PNG
func Encode(content string) ([]byte, error) {
	return qr.Encode(content, qr.Medium, 256)
}

// EncodeDataURL 渲染为内联 data URL（未配置对象存储时落库用）
func EncodeDataURL(content string) (string, error) {
	png, err := Encode(content)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
