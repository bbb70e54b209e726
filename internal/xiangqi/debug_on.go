//go:build xiangqi_debug

package xiangqi

// go test -tags xiangqi_debug 打开越界断言
const debugChecks = true
