// Package main - stocklens CLI
// 종목명 해석과 추세 분류를 터미널에서 실행
//
// 사용법:
//
//	go run ./cmd/stocklens resolve 삼성전자
//	go run ./cmd/stocklens classify --short 2450.5 --long 2300.25 --current 2500
package main

import (
	"os"

	"github.com/wonny/stocklens/cmd/stocklens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
