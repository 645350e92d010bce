package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rvault/recipevault/internal/gateway"
)

// List prints the logged-in account's recipes.
func (a *App) List(ctx context.Context) error {
	items, err := a.session.Recipes(ctx)
	if err != nil {
		fmt.Println(gateway.PublicMessage(err))
		return err
	}

	if len(items) == 0 {
		fmt.Println("No recipes yet")
		return nil
	}
	for _, r := range items {
		fmt.Printf("%s  %s\n", r.ID, r.Name)
	}
	return nil
}

// Add prompts for a recipe name and stores it under the logged-in account.
func (a *App) Add(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter recipe name", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.session.AddRecipe(ctx, name); err != nil {
		fmt.Println(gateway.PublicMessage(err))
		return err
	}

	fmt.Println("Saved!")
	return nil
}
