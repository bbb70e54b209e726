//go:build !xiangqi_debug

package xiangqi

// 发布版本不做越界检查
const debugChecks = false
