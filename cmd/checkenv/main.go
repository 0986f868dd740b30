package main

import (
	"fmt"
	"os"
	"strings"

	"study-planner-backend/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "checkenv",
	Short: "Verify required environment variables",
	Long: `checkenv loads the .env file (if any) and reports whether every variable the
planner backend needs is present. It exits 0 when all are set and 1 otherwise.`,
	SilenceUsage: true,
	RunE:         runCheck,
}

func init() {
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "Path of the dotenv file to load before checking")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	// A missing .env is fine; real environments set variables directly
	_ = godotenv.Load(envFile)

	out := cmd.OutOrStdout()
	rule := strings.Repeat("=", 60)

	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "环境变量检查")
	fmt.Fprintln(out, rule)

	statuses, allPresent := config.CheckRequired(os.LookupEnv)
	for _, st := range statuses {
		if st.Present {
			fmt.Fprintf(out, "✓ %s: %s\n", st.Name, st.Preview)
		} else {
			fmt.Fprintf(out, "✗ %s: 未设置\n", st.Name)
		}
	}

	fmt.Fprintln(out, rule)

	if allPresent {
		fmt.Fprintln(out, "✓ 所有必需的环境变量都已配置！")
		fmt.Fprintln(out, "\n提示：聊天功能已准备就绪。")
		return nil
	}

	fmt.Fprintln(out, "✗ 缺少必需的环境变量！")
	fmt.Fprintln(out, "\n请在项目根目录的 .env 文件中添加：")
	for _, st := range statuses {
		if !st.Present {
			fmt.Fprintf(out, "%s=your_api_key_here\n", st.Name)
		}
	}
	return fmt.Errorf("missing required environment variables")
}
