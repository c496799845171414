package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "numgen",
	Short: "CLI 工具：產生隨機電話號碼並匯出 CSV",
	Long:  "這是一個用於產生隨機電話號碼的命令行工具，支援國碼、區碼、總長度與唯一性設定，結果匯出為 CSV 文件。",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
