package alert

import (
	"strings"
	"testing"

	"github.com/rfalcao/stockwatch/internal/models"
)

func TestEvaluate_OneAlertPerLowStockProduct(t *testing.T) {
	products := []models.Product{
		{Name: "Widget", Quantity: 5},
		{Name: "Gadget", Quantity: 10},
		{Name: "Gizmo", Quantity: 9},
		{Name: "Doodad", Quantity: 100},
	}

	alerts := Evaluate(products, 10)

	if len(alerts) != 2 {
		t.Fatalf("expected 2 alerts, got %d", len(alerts))
	}
	if alerts[0].ProductName != "Widget" || alerts[0].Quantity != 5 {
		t.Errorf("unexpected first alert: %+v", alerts[0])
	}
	if alerts[1].ProductName != "Gizmo" || alerts[1].Quantity != 9 {
		t.Errorf("unexpected second alert: %+v", alerts[1])
	}
}

func TestEvaluate_ThresholdIsExclusive(t *testing.T) {
	// quantity == threshold is not low stock
	alerts := Evaluate([]models.Product{{Name: "Widget", Quantity: 10}}, 10)
	if len(alerts) != 0 {
		t.Errorf("expected no alerts at exactly the threshold, got %d", len(alerts))
	}
}

func TestEvaluate_OrderIndependent(t *testing.T) {
	forward := []models.Product{
		{Name: "A", Quantity: 1},
		{Name: "B", Quantity: 50},
		{Name: "C", Quantity: 2},
	}
	reversed := []models.Product{forward[2], forward[1], forward[0]}

	a1 := Evaluate(forward, 10)
	a2 := Evaluate(reversed, 10)

	if len(a1) != len(a2) {
		t.Fatalf("alert counts differ: %d vs %d", len(a1), len(a2))
	}
	names := map[string]bool{}
	for _, a := range a1 {
		names[a.ProductName] = true
	}
	for _, a := range a2 {
		if !names[a.ProductName] {
			t.Errorf("alert for %s missing from forward evaluation", a.ProductName)
		}
	}
}

func TestEvaluate_RepeatedCallsProduceSameAlerts(t *testing.T) {
	products := []models.Product{{Name: "Widget", Quantity: 3}}

	first := Evaluate(products, 10)
	second := Evaluate(products, 10)

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected one alert from each pass, got %d and %d", len(first), len(second))
	}
	if first[0] != second[0] {
		t.Errorf("alerts differ between passes: %+v vs %+v", first[0], second[0])
	}
}

func TestEvaluate_EmptySet(t *testing.T) {
	if alerts := Evaluate(nil, 10); len(alerts) != 0 {
		t.Errorf("expected no alerts for empty set, got %d", len(alerts))
	}
}

func TestAlertSubjectAndBody(t *testing.T) {
	a := Alert{ProductName: "Widget", Quantity: 5, Threshold: 10}

	if got := a.Subject(); got != "Stock Alert for Widget" {
		t.Errorf("unexpected subject: %q", got)
	}

	body := a.Body()
	for _, want := range []string{"Widget", "5 units remaining", "10 units"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}
