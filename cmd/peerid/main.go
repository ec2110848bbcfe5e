// Package main 提供 peerid 命令行入口
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dep2p/go-peerid"
	"github.com/dep2p/go-peerid/pkg/keystore"
	"github.com/dep2p/go-peerid/pkg/lib/log"
)

var logger = log.Logger("peerid/cmd")

const version = "0.1.0"

var (
	// ─────────────────────────────────────────────────────────────────────
	// 操作选择（互斥）
	// ─────────────────────────────────────────────────────────────────────
	generate = flag.Bool("generate", false, "生成新身份")
	inspect  = flag.String("inspect", "", "解析 Base58 或十六进制形式的身份标识")
	fromJSON = flag.String("from-json", "", "从 JSON 文件加载身份")

	// ─────────────────────────────────────────────────────────────────────
	// 生成参数
	// ─────────────────────────────────────────────────────────────────────
	bits        = flag.Int("bits", peerid.DefaultKeyBits, "RSA 密钥大小（位）")
	keystoreDir = flag.String("keystore", "", "密钥库目录（可选，保存生成的身份）")
	password    = flag.String("password", "", "密钥库加密密码（可选）")

	// ─────────────────────────────────────────────────────────────────────
	// 信息显示
	// ─────────────────────────────────────────────────────────────────────
	showVersion = flag.Bool("version", false, "显示版本信息")
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	if *showVersion {
		fmt.Printf("peerid v%s\n", version)
		return nil
	}

	switch {
	case *generate:
		return runGenerate()
	case *inspect != "":
		return runInspect(*inspect)
	case *fromJSON != "":
		return runFromJSON(*fromJSON)
	default:
		flag.Usage()
		return nil
	}
}

// runGenerate 生成新身份并打印 JSON 表示
func runGenerate() error {
	logger.Info("正在生成身份", "bits", *bits)

	ident, err := peerid.Generate(*bits)
	if err != nil {
		return err
	}

	if *keystoreDir != "" {
		ks, err := keystore.NewFSKeystore(*keystoreDir, []byte(*password))
		if err != nil {
			return err
		}
		if err := ks.Put(ident); err != nil {
			return err
		}
		logger.Info("身份已保存", "id", ident.ShortString(), "dir", *keystoreDir)
	}

	data, err := json.MarshalIndent(ident, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// runInspect 解析文本形式的标识符并打印各种表示
func runInspect(text string) error {
	ident, err := peerid.FromB58String(text)
	if err != nil {
		// 回退到十六进制
		ident, err = peerid.FromHexString(strings.TrimPrefix(text, "0x"))
		if err != nil {
			return fmt.Errorf("既不是有效的 Base58 也不是十六进制: %v", err)
		}
	}

	printIdentity(ident)
	return nil
}

// runFromJSON 从 JSON 文件加载身份并打印规范表示
func runFromJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	ident, err := peerid.FromJSON(data)
	if err != nil {
		return err
	}

	printIdentity(ident)
	return nil
}

// printIdentity 打印身份的各种表示
func printIdentity(ident *peerid.Identity) {
	fmt.Printf("Base58:  %s\n", ident.B58String())
	fmt.Printf("Hex:     %s\n", ident.HexString())
	fmt.Printf("长度:    %d 字节\n", len(ident.Bytes()))
	fmt.Printf("公钥:    %v\n", ident.HasPublicKey())
	fmt.Printf("私钥:    %v\n", ident.HasPrivateKey())
}
