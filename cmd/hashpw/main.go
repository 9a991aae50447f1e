package main

import (
	"Daybook/internal/pkg/security"
	"fmt"
	"os"
)

// 生成控制台口令的 bcrypt 哈希，结果填入 configs/config.yaml 的 admin.password_hash
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpw <password>")
		os.Exit(1)
	}

	hash, err := security.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
