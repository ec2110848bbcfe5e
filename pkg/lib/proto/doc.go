// Package proto 定义 go-peerid 的线格式消息（wire format）
//
// # 子包
//
//   - key: 密钥记录序列化格式
//
// # 职能
//
// pkg/lib/proto 的职能是定义 **跨实现互操作** 的消息编码：
//   - 支持跨语言序列化（Protobuf wire format）
//   - 需要版本兼容（向后/向前兼容）
//   - 变更成本高（影响所有持有相同公钥的对端）
//
// 任何符合规范的解码器必须能接受任何符合规范的编码器产生的记录。
package proto
