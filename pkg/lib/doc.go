// Package lib 包含基础设施工具库
//
// 本目录包含与身份派生核心无关的通用工具库：
//
//   - crypto: RSA 密钥原语（生成、DER 编解码）
//   - multihash: 自描述哈希标识符
//   - log: 日志封装
//   - proto: 密钥记录的 wire format 定义
//
// 根包 peerid 组合这些工具库实现身份的构造与表示。
package lib
