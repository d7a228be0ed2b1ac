package service

import (
	"encoding/json"
	"strconv"

	"odyssey_backend/pkg/logger"

	"go.uber.org/zap"
)

// SlotStore 会话槽位存储抽象，由 repository.SlotRepository 实现
type SlotStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	SetMany(slots map[string]string) error
	Delete(key string) error
}

// sessionCodec 槽位的类型化编解码。解码失败不视为错误：记录 warn 并
// 回退到该字段的种子值，保证受损槽位不会阻塞水合
type sessionCodec struct {
	store SlotStore
}

func (c *sessionCodec) getString(key, fallback string) string {
	raw, ok, err := c.store.Get(key)
	if err != nil {
		logger.Log.Warn("槽位读取失败，使用回退值", zap.String("slot", key), zap.Error(err))
		return fallback
	}
	if !ok {
		return fallback
	}
	return raw
}

func (c *sessionCodec) getInt(key string, fallback int) int {
	raw, ok, err := c.store.Get(key)
	if err != nil {
		logger.Log.Warn("槽位读取失败，使用回退值", zap.String("slot", key), zap.Error(err))
		return fallback
	}
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		logger.Log.Warn("槽位解码失败，使用回退值", zap.String("slot", key), zap.String("raw", raw), zap.Error(err))
		return fallback
	}
	return n
}

func (c *sessionCodec) getBool(key string, fallback bool) bool {
	raw, ok, err := c.store.Get(key)
	if err != nil {
		logger.Log.Warn("槽位读取失败，使用回退值", zap.String("slot", key), zap.Error(err))
		return fallback
	}
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		logger.Log.Warn("槽位解码失败，使用回退值", zap.String("slot", key), zap.String("raw", raw), zap.Error(err))
		return fallback
	}
	return b
}

// getJSON 解码失败或槽位缺失时调用 reset 恢复种子值并返回 false
func (c *sessionCodec) getJSON(key string, out interface{}, reset func()) bool {
	raw, ok, err := c.store.Get(key)
	if err != nil {
		logger.Log.Warn("槽位读取失败，使用回退值", zap.String("slot", key), zap.Error(err))
		reset()
		return false
	}
	if !ok {
		reset()
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		logger.Log.Warn("槽位解码失败，使用回退值", zap.String("slot", key), zap.Error(err))
		reset()
		return false
	}
	return true
}

// has 仅判断槽位是否存在（presence-only 哨兵字段）
func (c *sessionCodec) has(key string) bool {
	_, ok, err := c.store.Get(key)
	if err != nil {
		logger.Log.Warn("槽位读取失败", zap.String("slot", key), zap.Error(err))
		return false
	}
	return ok
}

func encodeInt(n int) string {
	return strconv.Itoa(n)
}

func encodeBool(b bool) string {
	return strconv.FormatBool(b)
}

// encodeJSON 编码失败说明内存状态本身已损坏，记录后返回空对象以免写入脏值
func encodeJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("槽位编码失败", zap.Error(err))
		return "{}"
	}
	return string(data)
}
