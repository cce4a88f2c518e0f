package ws

import (
	"fmt"
	"net/http"
	"path"
	"reflect"
	"strconv"
	"time"

	"go-splendor/logger"
	"go-splendor/repository"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// 将 HTTP 请求升级为 WebSocket 连接
func upgradeConnection(c *gin.Context) (*websocket.Conn, error) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.L.Warn("WebSocket 升级失败", zap.Error(err))
	}
	return conn, err
}

// 自定义 HookFunc，把字符串转换成 int
func stringToIntHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Kind, to reflect.Kind, data interface{}) (interface{}, error) {
		if from == reflect.String && to == reflect.Int {
			return strconv.Atoi(data.(string))
		}
		return data, nil
	}
}

// decodeMessage 把客户端消息解码到结构体，数字既可以是 JSON 数字也可以是字符串
func decodeMessage(msgMap map[string]interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: stringToIntHookFunc(),
		Result:     out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(msgMap)
}

func getGameLogFilePath(roomID string) string {
	startKey := fmt.Sprintf("room:%s:game_start_time", roomID)
	startTimeStr, err := repository.Rdb.Get(repository.Ctx, startKey).Result()
	if err != nil {
		startTimeStr = time.Now().Format("20060102_150405")
		repository.Rdb.Set(repository.Ctx, startKey, startTimeStr, 0)
	}
	return path.Join(gameLogDir, fmt.Sprintf("%s_%s.json", roomID, startTimeStr))
}
