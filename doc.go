// Package peerid 提供基于 RSA 密钥对的加密节点身份
//
// 身份标识符是编码后公钥记录的 multihash（sha2-256），
// 适合作为分布式系统中的查找键：持有相同公钥的双方，
// 无论实现语言，都会独立计算出相同的标识符。
//
// # 核心概念
//
//   - Identity: 不可变的身份实体，携带标识符和可选的密钥记录
//   - 密钥记录: 带类型标签的二进制封装（见 pkg/lib/proto/key）
//   - 派生规则: id = multihash(sha2-256, encode(公钥记录))
//
// # 快速开始
//
//	import "github.com/dep2p/go-peerid"
//
//	// 生成新身份（2048 位 RSA）
//	id, err := peerid.Generate(0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(id.B58String())
//
//	// 从已有材料重建身份
//	same, err := peerid.FromB58String(id.B58String())
//
// # 重建路径
//
// 六条构造路径都产生 Identity，且保持同一派生不变量：
//
//   - Generate: 生成密钥对并派生标识符
//   - FromPublicKey / FromPrivateKey: 从编码的密钥记录重建
//   - FromBytes / FromHexString / FromB58String: 仅标识符（无密钥材料）
//   - FromJSON: 从 JSON 表示重建（不重新校验派生关系）
//
// 所有操作都是纯函数：同步、无共享状态，可安全并发调用。
package peerid
