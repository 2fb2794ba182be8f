package i18n

// Static UI string tables for the public site. Spanish is the default
// language; unknown language codes fall back to it.

const DefaultLang = "es"

var tables = map[string]map[string]string{
	"en": {
		"home":              "Home",
		"products":          "Products",
		"about":             "About Us",
		"contact":           "Contact",
		"rights":            "All Rights Reserved",
		"hero_title":        "Authentic Italian Products",
		"hero_subtitle":     "We bring the best Italian quality directly to Cuba",
		"view_products":     "View Products",
		"featured_products": "Featured Products",
		"featured_subtitle": "Explore our selection of premium Italian products",
		"view_details":      "View Details",
		"all_products":      "View All Products",
		"related_products":  "Related Products",
		"search":            "Search",
		"no_results":        "No products found",
		"contact_cta":       "Need More Information?",
		"contact_us":        "Contact Us",
	},
	"es": {
		"home":              "Inicio",
		"products":          "Productos",
		"about":             "Sobre Nosotros",
		"contact":           "Contacto",
		"rights":            "Todos los Derechos Reservados",
		"hero_title":        "Productos Italianos Auténticos",
		"hero_subtitle":     "Traemos la mejor calidad italiana directamente a Cuba",
		"view_products":     "Ver Productos",
		"featured_products": "Productos Destacados",
		"featured_subtitle": "Explora nuestra selección de productos italianos premium",
		"view_details":      "Ver Detalles",
		"all_products":      "Ver Todos los Productos",
		"related_products":  "Productos Relacionados",
		"search":            "Buscar",
		"no_results":        "No se encontraron productos",
		"contact_cta":       "¿Necesitas Más Información?",
		"contact_us":        "Contáctanos",
	},
	"it": {
		"home":              "Home",
		"products":          "Prodotti",
		"about":             "Chi Siamo",
		"contact":           "Contatti",
		"rights":            "Tutti i Diritti Riservati",
		"hero_title":        "Autentici Prodotti Italiani",
		"hero_subtitle":     "Portiamo la migliore qualità italiana direttamente a Cuba",
		"view_products":     "Visualizza Prodotti",
		"featured_products": "Prodotti in Evidenza",
		"featured_subtitle": "Esplora la nostra selezione di prodotti italiani premium",
		"view_details":      "Visualizza Dettagli",
		"all_products":      "Visualizza Tutti i Prodotti",
		"related_products":  "Prodotti Correlati",
		"search":            "Cerca",
		"no_results":        "Nessun prodotto trovato",
		"contact_cta":       "Hai Bisogno di Maggiori Informazioni?",
		"contact_us":        "Contattaci",
	},
}

// Table returns the string table for lang, falling back to Spanish.
func Table(lang string) map[string]string {
	if table, ok := tables[lang]; ok {
		return table
	}
	return tables[DefaultLang]
}

// Languages lists the supported language codes.
func Languages() []string {
	return []string{"en", "es", "it"}
}
