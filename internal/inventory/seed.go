package inventory

import "dispensa/internal/model"

// DefaultCategories returns the ten seeded categories. They are flagged
// IsDefault and can never be deleted.
func DefaultCategories() []model.Category {
	return []model.Category{
		{ID: "carne", Name: "Carne", Icon: "🥩", IsDefault: true},
		{ID: "verdure", Name: "Verdure", Icon: "🥬", IsDefault: true},
		{ID: "formaggi", Name: "Formaggi", Icon: "🧀", IsDefault: true},
		{ID: "pasta", Name: "Pasta", Icon: "🍝", IsDefault: true},
		{ID: "condimenti", Name: "Condimenti", Icon: "🫒", IsDefault: true},
		{ID: "pesce", Name: "Pesce", Icon: "🐟", IsDefault: true},
		{ID: "dolci", Name: "Dolci", Icon: "🍰", IsDefault: true},
		{ID: "pane", Name: "Pane", Icon: "🍞", IsDefault: true},
		{ID: "bevande", Name: "Bevande", Icon: "🥤", IsDefault: true},
		{ID: "altri", Name: "Altri", Icon: "📦", IsDefault: true},
	}
}

func seedProduct(id int64, name, category string, quantity, minThreshold int, unit string) model.Product {
	return model.Product{
		ID:           id,
		Name:         name,
		Category:     category,
		Quantity:     quantity,
		MinThreshold: minThreshold,
		Unit:         unit,
	}
}

// DefaultProducts returns the hand-curated starting catalog used when the
// gateway holds no product entry.
func DefaultProducts() []model.Product {
	return []model.Product{
		// Formaggi
		seedProduct(1, "Caciotta", "formaggi", 0, 2, "pz"),
		seedProduct(2, "Taleggio", "formaggi", 0, 2, "pz"),
		seedProduct(3, "Gorgonzola", "formaggi", 0, 2, "pz"),
		seedProduct(4, "Mozzarella", "formaggi", 5, 3, "pz"),
		seedProduct(5, "Burrata", "formaggi", 0, 2, "pz"),
		seedProduct(6, "Philadelphia", "formaggi", 0, 2, "pz"),
		seedProduct(7, "Pecorino S.S", "formaggi", 0, 1, "pz"),
		seedProduct(8, "Pecorino buste", "formaggi", 0, 3, "pz"),
		seedProduct(9, "Feta", "formaggi", 0, 2, "pz"),
		seedProduct(10, "Mascarpone", "formaggi", 0, 2, "pz"),
		seedProduct(11, "Scamorza", "formaggi", 0, 2, "pz"),
		seedProduct(12, "Prima blanca", "formaggi", 0, 2, "pz"),
		seedProduct(13, "Strangozzi", "formaggi", 0, 2, "pz"),
		seedProduct(14, "Parmigiano", "formaggi", 0, 1, "pz"),
		seedProduct(15, "Ricotta", "formaggi", 0, 2, "pz"),
		seedProduct(16, "Provolone", "formaggi", 0, 2, "pz"),
		seedProduct(17, "Fontina", "formaggi", 0, 2, "pz"),
		seedProduct(18, "Asiago", "formaggi", 0, 2, "pz"),

		// Salumi e carni
		seedProduct(19, "Pollo", "carne", 0, 2, "kg"),
		seedProduct(20, "Filetto", "carne", 0, 1, "kg"),
		seedProduct(21, "Contro filetto", "carne", 0, 1, "kg"),
		seedProduct(22, "Bistecche", "carne", 6, 3, "pz"),
		seedProduct(23, "Salsiccie", "carne", 0, 5, "pz"),
		seedProduct(24, "Macinato", "carne", 0, 1, "kg"),
		seedProduct(25, "Culatello", "carne", 0, 1, "pz"),
		seedProduct(26, "Capocollo", "carne", 0, 1, "pz"),
		seedProduct(27, "Guanciale", "carne", 0, 1, "pz"),
		seedProduct(28, "Mortadella", "carne", 0, 1, "pz"),
		seedProduct(29, "Prosciutto crudo", "carne", 0, 1, "pz"),
		seedProduct(30, "Prosciutto cotto", "carne", 0, 1, "pz"),
		seedProduct(31, "Bresaola", "carne", 0, 1, "pz"),
		seedProduct(32, "Speck", "carne", 0, 1, "pz"),
		seedProduct(33, "Pancetta", "carne", 0, 1, "pz"),
		seedProduct(34, "Agnello", "carne", 0, 1, "kg"),
		seedProduct(35, "Vitello", "carne", 0, 1, "kg"),

		// Verdure, ortaggi e frutta
		seedProduct(36, "Lattuga romana", "verdure", 1, 5, "pz"),
		seedProduct(37, "Rucola", "verdure", 0, 3, "pz"),
		seedProduct(38, "Carote", "verdure", 0, 5, "pz"),
		seedProduct(39, "Zucchine", "verdure", 0, 5, "pz"),
		seedProduct(40, "Pomodorini", "verdure", 0, 3, "pz"),
		seedProduct(41, "Peperoni", "verdure", 0, 3, "pz"),
		seedProduct(42, "Melanzane", "verdure", 0, 3, "pz"),
		seedProduct(43, "Basilico", "verdure", 0, 2, "pz"),
		seedProduct(44, "Menta", "verdure", 0, 2, "pz"),
		seedProduct(45, "Arancia", "verdure", 0, 5, "pz"),
		seedProduct(46, "Mela", "verdure", 0, 5, "pz"),
		seedProduct(47, "Uva", "verdure", 0, 2, "kg"),
		seedProduct(48, "Pomodori", "verdure", 0, 5, "pz"),
		seedProduct(49, "Cipolla", "verdure", 0, 5, "pz"),
		seedProduct(50, "Aglio", "verdure", 0, 3, "pz"),
		seedProduct(51, "Prezzemolo", "verdure", 0, 2, "pz"),
		seedProduct(52, "Rosmarino", "verdure", 0, 2, "pz"),
		seedProduct(53, "Limone", "verdure", 0, 5, "pz"),
		seedProduct(54, "Spinaci", "verdure", 0, 3, "pz"),
		seedProduct(55, "Broccoli", "verdure", 0, 3, "pz"),

		// Pesce
		seedProduct(56, "Salmone", "pesce", 0, 1, "kg"),
		seedProduct(57, "Tonno", "pesce", 0, 2, "pz"),
		seedProduct(58, "Branzino", "pesce", 0, 2, "pz"),
		seedProduct(59, "Orata", "pesce", 0, 2, "pz"),
		seedProduct(60, "Gamberi", "pesce", 0, 1, "kg"),
		seedProduct(61, "Calamari", "pesce", 0, 1, "kg"),
		seedProduct(62, "Cozze", "pesce", 0, 1, "kg"),
		seedProduct(63, "Vongole", "pesce", 0, 1, "kg"),
		seedProduct(64, "Baccalà", "pesce", 0, 1, "kg"),

		// Pasta e riso
		seedProduct(65, "Spaghetti n.5", "pasta", 0, 5, "pz"),
		seedProduct(66, "Pasta salsiccia", "pasta", 0, 3, "pz"),
		seedProduct(67, "Gnocchi", "pasta", 0, 5, "pz"),
		seedProduct(68, "Penne", "pasta", 0, 5, "pz"),
		seedProduct(69, "Riso", "pasta", 0, 3, "kg"),
		seedProduct(70, "Fusilli", "pasta", 0, 5, "pz"),
		seedProduct(71, "Rigatoni", "pasta", 0, 5, "pz"),
		seedProduct(72, "Linguine", "pasta", 0, 5, "pz"),
		seedProduct(73, "Tagliatelle", "pasta", 0, 3, "pz"),
		seedProduct(74, "Lasagne", "pasta", 0, 3, "pz"),
		seedProduct(75, "Ravioli", "pasta", 0, 3, "pz"),
		seedProduct(76, "Tortellini", "pasta", 0, 3, "pz"),

		// Condimenti, salse e olii
		seedProduct(77, "Olio EVO", "condimenti", 0, 2, "l"),
		seedProduct(78, "Olio cucina", "condimenti", 0, 2, "l"),
		seedProduct(79, "Olio gruppi", "condimenti", 0, 2, "l"),
		seedProduct(80, "Olio di semi", "condimenti", 0, 2, "l"),
		seedProduct(81, "Maionese", "condimenti", 0, 2, "pz"),
		seedProduct(82, "Salsa tartufata", "condimenti", 0, 2, "pz"),
		seedProduct(83, "Crema basilico", "condimenti", 0, 2, "pz"),
		seedProduct(84, "Crema zucchine", "condimenti", 0, 2, "pz"),
		seedProduct(85, "Aceto balsamico", "condimenti", 0, 1, "pz"),
		seedProduct(86, "Aceto di vino", "condimenti", 0, 1, "pz"),
		seedProduct(87, "Salsa pomodoro", "condimenti", 0, 5, "pz"),
		seedProduct(88, "Pesto", "condimenti", 0, 2, "pz"),
		seedProduct(89, "Ketchup", "condimenti", 0, 2, "pz"),
		seedProduct(90, "Senape", "condimenti", 0, 1, "pz"),

		// Dolci, dessert e gelati
		seedProduct(91, "Sorbetto", "dolci", 0, 3, "pz"),
		seedProduct(92, "Gelato", "dolci", 0, 5, "pz"),
		seedProduct(93, "Viennette", "dolci", 0, 5, "pz"),
		seedProduct(94, "Fragole", "dolci", 0, 2, "pz"),
		seedProduct(95, "Frutti R", "dolci", 0, 2, "pz"),
		seedProduct(96, "Cappellaci", "dolci", 0, 3, "pz"),
		seedProduct(97, "Tiramisù", "dolci", 0, 2, "pz"),
		seedProduct(98, "Panna cotta", "dolci", 0, 3, "pz"),
		seedProduct(99, "Cannoli", "dolci", 0, 5, "pz"),
		seedProduct(100, "Cioccolato", "dolci", 0, 2, "pz"),

		// Pane e prodotti da forno
		seedProduct(101, "Pane", "pane", 0, 10, "pz"),
		seedProduct(102, "Pavesini", "pane", 0, 3, "pz"),
		seedProduct(103, "Grissini", "pane", 0, 5, "pz"),
		seedProduct(104, "Focaccia", "pane", 0, 3, "pz"),
		seedProduct(105, "Biscotti", "pane", 0, 5, "pz"),
		seedProduct(106, "Crackers", "pane", 0, 3, "pz"),

		// Bevande
		seedProduct(107, "Rum", "bevande", 0, 1, "pz"),
		seedProduct(108, "Vino rosso", "bevande", 0, 5, "pz"),
		seedProduct(109, "Vino bianco", "bevande", 0, 5, "pz"),
		seedProduct(110, "Prosecco", "bevande", 0, 3, "pz"),
		seedProduct(111, "Birra", "bevande", 0, 10, "pz"),
		seedProduct(112, "Acqua naturale", "bevande", 0, 20, "pz"),
		seedProduct(113, "Acqua frizzante", "bevande", 0, 20, "pz"),
		seedProduct(114, "Coca Cola", "bevande", 0, 10, "pz"),
		seedProduct(115, "Aranciata", "bevande", 0, 5, "pz"),
		seedProduct(116, "Caffè", "bevande", 0, 3, "kg"),

		// Altri
		seedProduct(117, "Carta forno", "altri", 0, 5, "pz"),
		seedProduct(118, "Sapone piatti", "altri", 0, 2, "pz"),
		seedProduct(119, "Spugne gialle", "altri", 0, 10, "pz"),
		seedProduct(120, "Sale", "altri", 0, 2, "kg"),
		seedProduct(121, "Pepe", "altri", 0, 1, "pz"),
		seedProduct(122, "Guanti", "altri", 0, 5, "pz"),
		seedProduct(123, "Carta igienica", "altri", 0, 10, "pz"),
		seedProduct(124, "Tovaglioli", "altri", 0, 10, "pz"),
		seedProduct(125, "Detersivo", "altri", 0, 2, "pz"),
		seedProduct(126, "Sacchetti spazzatura", "altri", 0, 5, "pz"),
	}
}
