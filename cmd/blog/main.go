// Command blog runs a scripted tour of the Inkwell state core: it signs in
// as the built-in admin, publishes a post, browses the merged collection and
// shuts down cleanly so the state survives the next run.
package main

import (
	"context"
	"flag"
	"log"

	"inkwell/internal/bootstrap"
	"inkwell/internal/config"
	"inkwell/internal/observability"
	"inkwell/internal/service"
)

func main() {
	backend := flag.String("backend", "", "Storage backend (file, sqlite, redis, memory); overrides config")
	path := flag.String("path", "", "Storage path for the file and sqlite backends; overrides config")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *backend != "" {
		cfg.StorageBackend = *backend
	}
	if *path != "" {
		cfg.StoragePath = *path
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := observability.WithCorrelationID(context.Background(), observability.GenerateCorrelationID())

	app, err := bootstrap.InitRuntime(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}
	defer app.Close()

	log.Printf("Backend: %s, %d posts loaded", cfg.StorageBackend, len(app.Posts.List()))

	user, err := app.Auth.Login(ctx, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		log.Fatalf("Admin login failed: %v", err)
	}
	log.Printf("Signed in as %s (admin=%v)", user.Name, app.Auth.IsAdmin())

	post, err := app.Posts.Add(ctx, service.AddPostInput{
		Title:    "Notes from the command line",
		Body:     "Everything the browser build does, the CLI can replay: posts, sessions and the theme all live behind the same storage keys.",
		Category: "Technology",
		User:     user,
	})
	if err != nil {
		log.Fatalf("Publish failed: %v", err)
	}
	log.Printf("Published post %d (%d min read, image %s)", post.ID, post.ReadTime, post.Image)

	page := app.Posts.Browse(service.Query{Category: "Technology", PageSize: cfg.PageSize})
	log.Printf("Technology: %d posts across %d pages", page.Total, page.TotalPages)
	for _, p := range page.Posts {
		log.Printf("  [%d] %s by %s", p.ID, p.Title, p.Author)
	}

	log.Printf("Theme is now %s", app.Theme.Toggle(ctx))

	app.Auth.Logout(ctx)
	if err := app.Posts.Err(); err != nil {
		log.Printf("Warning: persistence degraded: %v", err)
	}
	log.Println("Done. Run again with the same backend to see the post persist.")
}
