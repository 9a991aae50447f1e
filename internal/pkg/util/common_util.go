package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// NormalizeTags 标签统一小写并去重，空白标签丢弃
func NormalizeTags(raw []string) []string {
	tagSet := make(map[string]struct{})
	var tags []string

	for _, t := range raw {
		tagName := strings.ToLower(strings.TrimSpace(t))
		if tagName == "" {
			continue
		}
		if _, exists := tagSet[tagName]; !exists {
			tagSet[tagName] = struct{}{}
			tags = append(tags, tagName)
		}
	}

	return tags
}

// HashIP 生成访客 IP 的弱匿名标识。只用于去重统计，不可反查，不作为可信身份。
func HashIP(ip string) string {
	sum := sha256.Sum256([]byte("daybook:" + ip))
	return hex.EncodeToString(sum[:8])
}
