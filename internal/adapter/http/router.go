package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/LeonardBuda/forever-zama/internal/adapter/http/middleware"
	"github.com/LeonardBuda/forever-zama/internal/logging"
)

func NewRouter(cart *CartHandler, checkout *CheckoutHandler, cat *CatalogHandler, leads *LeadHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.MetricsMiddleware())

	l := logging.New("http")
	r.Use(middleware.Logging(l))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// catalog pages
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"name": "Forever Living with Zama", "ok": true})
	})
	r.GET("/menus", cat.Menus)
	r.GET("/health_wellness", cat.Section("Health & Wellness"))
	r.GET("/skincare_personal_care", cat.Section("Skincare & Personal Care"))
	r.GET("/weight_management", cat.Section("Weight Management"))
	r.GET("/kids_family", cat.Section("Kids & Family"))
	r.GET("/combos", cat.Section("Combos"))
	r.GET("/join_options", cat.JoinOptions)

	// cart
	r.POST("/add_to_cart", cart.AddToCart)
	r.POST("/remove_from_cart", cart.RemoveFromCart)
	r.GET("/view_cart", cart.ViewCart)
	r.GET("/clear_cart", cart.ClearCart)

	// checkout
	r.GET("/checkout", checkout.Show)
	r.POST("/checkout", checkout.Submit)

	// lead capture
	r.GET("/join", cat.JoinOptions)
	r.POST("/join", leads.SubmitJoin)
	r.GET("/contact", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	r.POST("/contact", leads.SubmitContact)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "page not found"})
	})

	return r
}
