package catalog

import (
	"fmt"
	"strings"

	"commerce-chatbot-be/internal/entity"
)

// FormatProduct renders one product as a single chat line.
func FormatProduct(p *entity.Product) string {
	return fmt.Sprintf("Name: %s, Category: %s, Color: %s, Material: %s, Price: $%s, Style: %s, Size: %s",
		p.Name, p.Category, p.Color, p.Material, p.Price.StringFixed(2), p.Style, p.Size)
}

// FormatProducts renders products one per line, preserving input order.
func FormatProducts(products []*entity.Product) string {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, FormatProduct(p))
	}
	return strings.Join(lines, "\n")
}
