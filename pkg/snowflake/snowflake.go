package snowflake

import (
	"os"
	"strconv"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

func init() {
	// 多实例部署时通过 NODE_ID 区分，避免 ID 冲突
	n := int64(1)
	if v := os.Getenv("NODE_ID"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			n = parsed
		}
	}
	node, _ = snowflake.NewNode(n)
}

func GenUserID() uint64 {
	return uint64(node.Generate().Int64())
}

func GenID() int64 {
	return node.Generate().Int64()
}
