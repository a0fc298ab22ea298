package domain

// DefaultDishes is the menu served when the dish collection has never been
// written or its backing read fails. The public site must always have
// something to render.
func DefaultDishes() []Dish {
	return []Dish{
		{
			ID:          1,
			Name:        "Pincho camionero",
			Description: "Exquisito pincho elaborado con los mejores ingredientes de nuestra tierra",
			Image:       "/FotosBar/PinchoCamionero.png",
			Badge:       "Más vendido",
		},
		{
			ID:          2,
			Name:        "Pulpo a la gallega",
			Description: "Auténtico pulpo gallego cocido a la perfección, servido sobre cama de patatas gallegas",
			Image:       "/FotosBar/PulpoGallega.png",
			Badge:       "Tradicional",
		},
		{
			ID:          3,
			Name:        "Especial Camioneros",
			Description: "Espectacular mariscada con medio bogavante, sepia, calamarcitos, navajas y almejas gallegas",
			Image:       "/FotosBar/Mariscada.png",
			Badge:       "Especialidad",
		},
		{
			ID:          4,
			Name:        "Croquetas de Jamón Caseras",
			Description: "Deliciosas croquetas de jamón ibérico",
			Image:       "/FotosBar/CroquetasJamón.png",
			Badge:       "Tapas",
		},
		{
			ID:          5,
			Name:        "Tarta de queso",
			Description: "Deliciosa tarta de queso cremoso con base de galleta artesanal y coulis de fresas frescas",
			Image:       "/FotosBar/TartaQueso.png",
			Badge:       "Postre",
		},
		{
			ID:          6,
			Name:        "Chuletón a la brasa",
			Description: "Premium corte de carne seleccionado, cocinado a la brasa tradicional con leña natural",
			Image:       "/FotosBar/Carne.png",
			Badge:       "Premium",
		},
	}
}

// DefaultGallery is the fallback gallery, same policy as DefaultDishes.
func DefaultGallery() []GalleryImage {
	return []GalleryImage{
		{
			ID:          1,
			Src:         "/FotosBar/FotoBar1.png",
			Title:       "Los Camioneros Rubi",
			Description: "Disfruta de un ambiente rústico y acogedor",
			Badge:       "Principal",
		},
		{
			ID:          2,
			Src:         "/FotosBar/FotoBar2.jpg",
			Title:       "Rincon Familiar",
			Description: "Donde las historias y las buenas bebidas se encuentran",
			Badge:       "Popular",
		},
		{
			ID:          3,
			Src:         "/FotosBar/FotoBar3.jpg",
			Title:       "Espacio Acogedor",
			Description: "El lugar perfecto para compartir nuestra comida casera",
			Badge:       "Favorito",
		},
		{
			ID:    4,
			Src:   "/FotosBar/FotosBar4.jpg",
			Title: "Ambiente Único",
			Badge: "Favorito",
		},
	}
}
