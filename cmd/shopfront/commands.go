package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jacentio/shopfront/shop"
)

func registerCmd(a *app) *cobra.Command {
	var first, last, email, password, confirm string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if first == "" || last == "" || email == "" || password == "" {
				return fmt.Errorf("please fill all fields")
			}
			if len(password) < 6 {
				return fmt.Errorf("password must be at least 6 characters")
			}
			if confirm != "" && confirm != password {
				return fmt.Errorf("passwords do not match")
			}

			user, err := a.svc.Register(cmd.Context(), first, last, email, password)
			if err != nil {
				return err
			}
			fmt.Printf("Registered %s %s <%s>. You can now login.\n", user.FirstName, user.LastName, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&first, "first", "", "First name")
	cmd.Flags().StringVar(&last, "last", "", "Last name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (6+ characters)")
	cmd.Flags().StringVar(&confirm, "confirm", "", "Password confirmation")

	return cmd
}

func loginCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Log in and start a session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.svc.Authenticate(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s %s <%s>\n", user.FirstName, user.LastName, user.Email)
			return nil
		},
	}
}

func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.svc.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func whoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.svc.CurrentUser(cmd.Context())
			if err != nil {
				return err
			}
			if user == nil {
				fmt.Println("Not logged in")
				return nil
			}
			role := "customer"
			if user.Admin {
				role = "admin"
			}
			fmt.Printf("%s %s <%s> (%s)\n", user.FirstName, user.LastName, user.Email, role)
			return nil
		},
	}
}

func productsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse and manage the catalog",
	}

	cmd.AddCommand(productsListCmd(a), productsAddCmd(a), productsEditCmd(a), productsDeleteCmd(a))
	return cmd
}

func productsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [filter]",
		Short: "List products, newest first, optionally filtered",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireUser(cmd.Context()); err != nil {
				return err
			}

			filter := ""
			if len(args) == 1 {
				filter = args[0]
			}
			products, err := a.svc.SearchProducts(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if len(products) == 0 {
				fmt.Println("No products found")
				return nil
			}
			for _, p := range products {
				fmt.Printf("%s  %-24s %10.2f  %s\n", p.ID, p.Name, p.Price, p.Description)
			}
			return nil
		},
	}
}

func productsAddCmd(a *app) *cobra.Command {
	var name, description, price, image string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireAdmin(cmd.Context()); err != nil {
				return err
			}
			if name == "" || description == "" || price == "" {
				return fmt.Errorf("please fill all fields")
			}

			product, err := a.svc.CreateProduct(cmd.Context(), name, description, price, image)
			if err != nil {
				return err
			}
			fmt.Printf("Product added: %s (%s)\n", product.Name, product.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Product name")
	cmd.Flags().StringVar(&description, "description", "", "Product description")
	cmd.Flags().StringVar(&price, "price", "", "Product price")
	cmd.Flags().StringVar(&image, "image", "", "Image URL (optional)")

	return cmd
}

func productsEditCmd(a *app) *cobra.Command {
	var name, description, price, image string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a product (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireAdmin(cmd.Context()); err != nil {
				return err
			}

			var upd shop.ProductUpdate
			if cmd.Flags().Changed("name") {
				upd.Name = &name
			}
			if cmd.Flags().Changed("description") {
				upd.Description = &description
			}
			if cmd.Flags().Changed("price") {
				upd.Price = &price
			}
			if cmd.Flags().Changed("image") {
				upd.Image = &image
			}

			if err := a.svc.UpdateProduct(cmd.Context(), args[0], upd); err != nil {
				return err
			}
			fmt.Println("Updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&price, "price", "", "New price")
	cmd.Flags().StringVar(&image, "image", "", "New image URL")

	return cmd
}

func productsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product and its cart lines (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireAdmin(cmd.Context()); err != nil {
				return err
			}
			if err := a.svc.DeleteProduct(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Product deleted")
			return nil
		},
	}
}

func cartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the shopping cart",
	}

	cmd.AddCommand(cartAddCmd(a), cartListCmd(a), cartSetCmd(a), cartRemoveCmd(a), cartCheckoutCmd(a))
	return cmd
}

func cartAddCmd(a *app) *cobra.Command {
	var qty int

	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireUser(cmd.Context()); err != nil {
				return err
			}
			if qty < 1 {
				qty = 1
			}
			if _, err := a.svc.AddToCart(cmd.Context(), args[0], qty); err != nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&qty, "qty", 1, "Quantity to add")
	return cmd
}

func cartListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the cart with totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireUser(cmd.Context()); err != nil {
				return err
			}

			lines, err := a.svc.CartContents(cmd.Context())
			if err != nil {
				return err
			}
			if len(lines) == 0 {
				fmt.Println("Cart is empty")
				return nil
			}

			total := 0.0
			for _, line := range lines {
				lineTotal := line.Product.Price * float64(line.Item.Qty)
				total += lineTotal
				fmt.Printf("%s  %-24s %3d x %8.2f = %10.2f\n",
					line.Item.ID, line.Product.Name, line.Item.Qty, line.Product.Price, lineTotal)
			}
			fmt.Printf("%-58s %10.2f\n", "Total", total)
			return nil
		},
	}
}

func cartSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <cart-item-id> <qty>",
		Short: "Set a cart line's quantity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireUser(cmd.Context()); err != nil {
				return err
			}

			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			// Quantities below one make no sense on a cart line.
			if qty < 1 {
				qty = 1
			}
			if err := a.svc.UpdateQuantity(cmd.Context(), args[0], qty); err != nil {
				return err
			}
			fmt.Println("Quantity updated")
			return nil
		},
	}
}

func cartRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <cart-item-id>",
		Short: "Remove a cart line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireUser(cmd.Context()); err != nil {
				return err
			}
			if err := a.svc.RemoveFromCart(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Removed")
			return nil
		},
	}
}

func cartCheckoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Place the order and empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireUser(cmd.Context()); err != nil {
				return err
			}
			return a.svc.CheckoutCart(cmd.Context())
		},
	}
}
