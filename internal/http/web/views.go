package web

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rfalcao/stockwatch/internal/auth"
	"github.com/rfalcao/stockwatch/internal/intake"
	"github.com/rfalcao/stockwatch/internal/models"
	"github.com/rfalcao/stockwatch/internal/qr"
	repo "github.com/rfalcao/stockwatch/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

const welcomeCookie = "stockwatch_seen"

type productRow struct {
	models.Product
	LowStock bool
}

type inventoryData struct {
	Welcome  bool
	Query    string
	Products []productRow
	Metrics  repo.Metrics
	Message  string
	Error    string
}

// InventoryPage renders the listing/search/delete/export view. The welcome
// banner shows once per browser, tracked by a cookie instead of ambient
// session state.
func InventoryPage(w http.ResponseWriter, r *http.Request) {
	data := inventoryData{
		Query:   r.URL.Query().Get("q"),
		Message: r.URL.Query().Get("msg"),
	}

	if _, err := r.Cookie(welcomeCookie); err != nil {
		data.Welcome = true
		http.SetCookie(w, &http.Cookie{Name: welcomeCookie, Value: "1", Path: "/"})
	}

	var products []models.Product
	var err error
	if data.Query != "" {
		products, err = productRepo.Search(data.Query)
	} else {
		products, err = productRepo.GetAll()
	}
	if err != nil {
		data.Error = "could not load products"
		render(w, "inventory.html", data)
		return
	}

	threshold := sweeper.Threshold()
	for _, p := range products {
		data.Products = append(data.Products, productRow{Product: p, LowStock: p.Quantity < threshold})
	}

	if m, err := metricsRepo.GetDashboardMetrics(threshold); err == nil {
		data.Metrics = m
	}

	render(w, "inventory.html", data)
}

// DeleteProduct removes a record and runs the alert sweep over the rest.
func DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	if err := productRepo.Delete(id); err != nil {
		http.Redirect(w, r, "/ui?msg=could+not+delete+product", http.StatusSeeOther)
		return
	}

	if _, warnings, err := sweeper.Sweep(r.Context()); err != nil {
		log.Printf("alert sweep after deletion failed: %v", err)
	} else {
		for _, warning := range warnings {
			log.Print(warning)
		}
	}

	http.Redirect(w, r, "/ui?msg=product+deleted", http.StatusSeeOther)
}

type addProductData struct {
	Name     string
	Quantity string
	Price    string
	Category string
	Message  string
	Errors   []string
	Warnings []string
}

func AddProductPage(w http.ResponseWriter, r *http.Request) {
	render(w, "add.html", addProductData{Quantity: "1"})
}

// AddProductSubmit handles the manual intake form.
func AddProductSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	data := addProductData{
		Name:     r.PostFormValue("name"),
		Quantity: r.PostFormValue("quantity"),
		Price:    r.PostFormValue("price_per_unit"),
		Category: r.PostFormValue("category"),
	}

	quantity, err := strconv.Atoi(data.Quantity)
	if err != nil {
		data.Errors = append(data.Errors, "quantity must be a whole number")
	}
	price, err := strconv.ParseFloat(data.Price, 64)
	if err != nil {
		data.Errors = append(data.Errors, "price must be a number")
	}
	if len(data.Errors) > 0 {
		render(w, "add.html", data)
		return
	}

	result, err := reconciler.ReconcileManual(r.Context(), intake.Observation{
		Name:          data.Name,
		QuantityDelta: quantity,
		PricePerUnit:  price,
		Category:      data.Category,
	})
	if err != nil {
		data.Errors = append(data.Errors, err.Error())
		render(w, "add.html", data)
		return
	}

	data.Message = fmt.Sprintf("Product %s added/updated successfully.", result.Product.Name)
	data.Warnings = result.Warnings
	render(w, "add.html", addProductData{Quantity: "1", Message: data.Message, Warnings: data.Warnings})
}

type scanData struct {
	Payload  *qr.Payload
	Product  *models.Product
	Created  bool
	Message  string
	Error    string
	Warnings []string
}

func ScanPage(w http.ResponseWriter, r *http.Request) {
	render(w, "scan.html", scanData{})
}

// ScanSubmit decodes the uploaded QR image and reconciles its payload.
func ScanSubmit(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		render(w, "scan.html", scanData{Error: "please choose an image file"})
		return
	}
	defer file.Close()

	payload, err := qr.Decode(file)
	if err != nil {
		render(w, "scan.html", scanData{Error: err.Error()})
		return
	}

	data := scanData{Payload: &payload}

	result, err := reconciler.ReconcileScan(r.Context(), intake.Observation{
		Name:          payload.ProductName,
		QuantityDelta: payload.Quantity,
		PricePerUnit:  payload.Price,
	})
	if err != nil {
		data.Error = err.Error()
		render(w, "scan.html", data)
		return
	}

	data.Product = &result.Product
	data.Created = result.Created
	data.Warnings = result.Warnings
	if result.Created {
		data.Message = fmt.Sprintf("Added new product %s", result.Product.Name)
	} else {
		data.Message = fmt.Sprintf("Updated quantity of %s to %d", result.Product.Name, result.Product.Quantity)
	}
	render(w, "scan.html", data)
}

type loginData struct {
	Username string
	Error    string
}

func LoginPage(w http.ResponseWriter, r *http.Request) {
	render(w, "login.html", loginData{})
}

// LoginSubmit checks the credentials against the user store and starts a
// session by handing the browser the JWT in a cookie.
func LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := userRepo.GetByUsername(username)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		render(w, "login.html", loginData{Username: username, Error: "invalid username or password"})
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		http.Error(w, "could not start session", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
	http.Redirect(w, r, "/ui", http.StatusSeeOther)
}

func Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/ui", http.StatusSeeOther)
}

type chatData struct {
	Question string
	Answer   string
}

func ChatPage(w http.ResponseWriter, r *http.Request) {
	render(w, "chat.html", chatData{})
}

// ChatSubmit forwards the question to the assistant; a failed model call is
// shown as the answer text.
func ChatSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	question := r.PostFormValue("question")
	data := chatData{Question: question}

	if question != "" {
		products, err := productRepo.GetAll()
		if err != nil {
			data.Answer = "Error: could not load inventory"
			render(w, "chat.html", data)
			return
		}
		answer, err := assistantClient.Ask(r.Context(), products, question)
		if err != nil {
			answer = fmt.Sprintf("Error: %v", err)
		}
		data.Answer = answer
	}

	render(w, "chat.html", data)
}
