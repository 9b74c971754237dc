package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenUserID 用户ID
func GenUserID() uint64 {
	return uint64(node.Generate().Int64())
}

// GenTransactionID 积分流水ID，单调递增，可按生成顺序排序
func GenTransactionID() uint64 {
	return uint64(node.Generate().Int64())
}

// GenOrderSn 订单业务单号
func GenOrderSn() string {
	return node.Generate().String()
}

func GenID() int64 {
	return node.Generate().Int64()
}
