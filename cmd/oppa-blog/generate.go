package main

import (
	"fmt"

	"github.com/manhva-oppa/oppa-blog/bootstrap"
	"github.com/manhva-oppa/oppa-blog/domain"
	"github.com/manhva-oppa/oppa-blog/repository/repository_blog"
	"github.com/manhva-oppa/oppa-blog/usecase/usecase_blog"
	"github.com/spf13/cobra"
)

var (
	generateMangaID string
	generateForce   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the blog post for one manga",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateMangaID, "manga-id", "", "manga entry id (hex)")
	generateCmd.Flags().BoolVar(&generateForce, "force", false, "replace an existing post for the manga")
	_ = generateCmd.MarkFlagRequired("manga-id")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	app, err := bootstrap.App(configFile)
	if err != nil {
		return err
	}
	defer app.Close()

	db := app.Database()
	postRepo := repository_blog.NewBlogPostRepository(db, domain.CollectionBlogPosts)
	mangaRepo := repository_blog.NewMangaRepository(db, domain.CollectionMangaEntries)
	uc := usecase_blog.NewGenerateUsecase(postRepo, mangaRepo, app.Writer, app.Logger, app.Env.Timeout())

	post, err := uc.Generate(cmd.Context(), generateMangaID, generateForce)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", post.ID.Hex(), post.Slug)
	return nil
}
