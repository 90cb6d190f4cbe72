package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LeonardBuda/forever-zama/internal/catalog"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

func sectionJSON(s catalog.Section) gin.H {
	groups := make(gin.H, len(s.Groups))
	for _, g := range s.Groups {
		ps := make([]gin.H, 0, len(g.Products))
		for _, p := range g.Products {
			ps = append(ps, productJSON(p))
		}
		groups[g.Name] = ps
	}
	return groups
}

// Menus returns the full catalog tree plus the join packages.
func (h *CatalogHandler) Menus(c *gin.Context) {
	menu := gin.H{}
	for _, s := range h.catalog.Sections() {
		menu[s.Name] = sectionJSON(s)
	}
	join := make([]gin.H, 0)
	for _, p := range h.catalog.JoinOptions() {
		join = append(join, productJSON(p))
	}
	menu["Join Options"] = join
	c.JSON(http.StatusOK, gin.H{"menu": menu})
}

// Section returns one category slice; used by the per-category pages.
func (h *CatalogHandler) Section(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := h.catalog.Section(name)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"menu": sectionJSON(s)})
	}
}

// JoinOptions returns the flat membership package list.
func (h *CatalogHandler) JoinOptions(c *gin.Context) {
	join := make([]gin.H, 0)
	for _, p := range h.catalog.JoinOptions() {
		join = append(join, productJSON(p))
	}
	c.JSON(http.StatusOK, gin.H{"menu": join})
}
