package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simaogato/worth-backend/internal/logger"
	"github.com/simaogato/worth-backend/internal/postcompiler"
)

func compilePostsCmd(a *app) *cobra.Command {
	var postsDir, outputDir string

	cmd := &cobra.Command{
		Use:   "compile-posts",
		Short: "Compile post templates into dated markdown files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := postcompiler.Config{
				PostsDir:  a.cfg.Posts.Dir,
				OutputDir: a.cfg.Posts.OutputDir,
			}
			if postsDir != "" {
				cfg.PostsDir = postsDir
			}
			if outputDir != "" {
				cfg.OutputDir = outputDir
			}

			compiler := postcompiler.New(cfg, logger.WithComponent(a.log, "postcompiler"))
			result, err := compiler.Compile(cmd.Context())
			if err != nil {
				return err
			}

			for _, path := range result.Compiled {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&postsDir, "posts", "", "posts directory (overrides POSTS_DIR)")
	cmd.Flags().StringVar(&outputDir, "out", "", "output directory (overrides POSTS_OUTPUT_DIR)")
	return cmd
}
