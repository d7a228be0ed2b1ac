// 生成访问密钥的 bcrypt 哈希
//
// 输出填入 configs/config.yaml 的 auth.access_key_hash。
//
// 用法: go run scripts/hash_key.go <access-key>

package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("用法: go run scripts/hash_key.go <access-key>")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("哈希生成失败: %v", err)
	}

	fmt.Println(string(hash))
}
