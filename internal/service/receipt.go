package service

import (
	"fmt"
	"strings"

	"github.com/mghkill/burguer-saas/internal/domain"
)

// renderReceipt produces the plain-text receipt offered for download as
// pedido-<ID>.txt.
func renderReceipt(r domain.OrderReceipt) string {
	var b strings.Builder

	b.WriteString("=================================\n")
	b.WriteString("        BURGERAÇAÍ\n")
	fmt.Fprintf(&b, "        PEDIDO #%s\n", r.OrderID)
	b.WriteString("=================================\n")
	fmt.Fprintf(&b, "%s\n\n", r.Date.Format("02/01/2006 15:04"))

	b.WriteString("ITENS DO PEDIDO:\n")
	for _, item := range r.Items {
		fmt.Fprintf(&b, "\n%s x%d\n", item.Name, item.Quantity)
		if len(item.RemovedComponents) > 0 {
			fmt.Fprintf(&b, "  Removidos: %s\n", strings.Join(item.RemovedComponents, ", "))
		}
		if len(item.AddedComponents) > 0 {
			fmt.Fprintf(&b, "  Adicionais: %s\n", strings.Join(item.AddedComponents, ", "))
		}
		fmt.Fprintf(&b, "R$ %.2f\n", item.Price)
	}

	b.WriteString("---------------------------------\n")
	fmt.Fprintf(&b, "TOTAL: R$ %.2f\n\n", r.Total)

	b.WriteString("CLIENTE:\n")
	fmt.Fprintf(&b, "Nome: %s\n", r.CustomerName)
	fmt.Fprintf(&b, "Telefone: %s\n", r.CustomerPhone)
	fmt.Fprintf(&b, "Endereço: %s\n\n", r.CustomerAddress)

	fmt.Fprintf(&b, "Forma de Pagamento: %s\n\n", strings.ToUpper(string(r.PaymentMethod)))

	b.WriteString("=================================\n")
	b.WriteString("      Pedido Confirmado!\n")
	b.WriteString("     Agradecemos a preferência\n")
	b.WriteString("=================================\n")

	return b.String()
}
