package view

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"food-delivery/internal/domain"
)

// View is the console surface: it collects credentials and food selections
// and renders results. It carries no business logic; errors it prints come
// from the service verbatim.
type View interface {
	ReadCredentials() *domain.Credentials
	PrintWelcomeMessage(customer *domain.Customer)
	PrintAllFoods(foods []domain.Food)
	ReadFoodSelection(foods []domain.Food) domain.FoodSelection
	PrintAddedToCart(food *domain.Food, pieces int)
	PrintErrorMessage(message string)
	PrintOrderCreatedStatement(order *domain.Order, balance decimal.Decimal)
}

type ConsoleView struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsoleView(in io.Reader, out io.Writer) *ConsoleView {
	return &ConsoleView{in: bufio.NewReader(in), out: out}
}

func (v *ConsoleView) ReadCredentials() *domain.Credentials {
	user := v.prompt("Username: ")
	pass := v.prompt("Password: ")
	return &domain.Credentials{UserName: user, Password: pass}
}

func (v *ConsoleView) PrintWelcomeMessage(customer *domain.Customer) {
	fmt.Fprintf(v.out, "\nWelcome, %s! Your balance is %s.\n", customer.Name, domain.PlainString(customer.Balance))
}

func (v *ConsoleView) PrintAllFoods(foods []domain.Food) {
	fmt.Fprintln(v.out, "\nOur menu:")
	for i, f := range foods {
		fmt.Fprintf(v.out, "%3d. %s (%s kcal) - %s\n     %s\n", i+1, f.Name, domain.PlainString(f.Calorie), domain.PlainString(f.Price), f.Description)
	}
}

// ReadFoodSelection prompts for an item by list number or exact name plus
// a piece count. An empty entry finishes the selection loop; the count 0
// removes the item from the cart.
func (v *ConsoleView) ReadFoodSelection(foods []domain.Food) domain.FoodSelection {
	for {
		entry := v.prompt("\nFood (number or name, empty to checkout): ")
		if entry == "" {
			return domain.FoodSelection{Done: true}
		}
		food := findFood(foods, entry)
		if food == nil {
			fmt.Fprintf(v.out, "No such food: %s\n", entry)
			continue
		}
		countEntry := v.prompt(fmt.Sprintf("Pieces of %s: ", food.Name))
		pieces, err := strconv.Atoi(countEntry)
		if err != nil {
			fmt.Fprintf(v.out, "Not a number: %s\n", countEntry)
			continue
		}
		return domain.FoodSelection{Food: food, Pieces: pieces}
	}
}

func (v *ConsoleView) PrintAddedToCart(food *domain.Food, pieces int) {
	if pieces == 0 {
		fmt.Fprintf(v.out, "Removed %s from your cart.\n", food.Name)
		return
	}
	fmt.Fprintf(v.out, "Added %d x %s to your cart.\n", pieces, food.Name)
}

func (v *ConsoleView) PrintErrorMessage(message string) {
	fmt.Fprintf(v.out, "Error: %s\n", message)
}

func (v *ConsoleView) PrintOrderCreatedStatement(order *domain.Order, balance decimal.Decimal) {
	fmt.Fprintf(v.out, "\nOrder #%d confirmed, total %s. Remaining balance: %s.\n", *order.ID, domain.PlainString(order.Price), domain.PlainString(balance))
}

func (v *ConsoleView) prompt(label string) string {
	fmt.Fprint(v.out, label)
	line, err := v.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

func findFood(foods []domain.Food, entry string) *domain.Food {
	if n, err := strconv.Atoi(entry); err == nil && n >= 1 && n <= len(foods) {
		return &foods[n-1]
	}
	for i := range foods {
		if foods[i].Name == entry {
			return &foods[i]
		}
	}
	return nil
}
