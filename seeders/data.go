package seeders

type clientSeed struct {
	Name  string
	Phone string
	Email string
}

var clientsData = []clientSeed{
	{Name: "Colegio San Martín", Phone: "+591 700-11223", Email: "compras@sanmartin.edu.bo"},
	{Name: "Ferretería El Tornillo", Phone: "+591 701-44556", Email: "eltornillo@gmail.com"},
	{Name: "Club Deportivo Águilas", Phone: "+591 702-77889", Email: "aguilas.club@hotmail.com"},
	{Name: "María Fernández", Phone: "+591 703-12345", Email: ""},
	{Name: "Restaurante La Cabaña", Phone: "+591 704-67890", Email: "lacabana@gmail.com"},
}

type orderSeed struct {
	ClientIndex int
	Description string
	ServiceType string
	Quantity    int
	Total       string
	DueDays     int
	Urgent      bool
}

var ordersData = []orderSeed{
	{ClientIndex: 0, Description: "Bordado de escudo en 120 poleras escolares", ServiceType: "BORDADO", Quantity: 120, Total: "1800.00", DueDays: 14, Urgent: false},
	{ClientIndex: 1, Description: "Serigrafía de logo en 50 camisas de trabajo", ServiceType: "SERIGRAFIA", Quantity: 50, Total: "750.00", DueDays: 7, Urgent: false},
	{ClientIndex: 2, Description: "Sublimación de camisetas del equipo, numeradas", ServiceType: "SUBLIMACION", Quantity: 22, Total: "1100.00", DueDays: 3, Urgent: true},
	{ClientIndex: 3, Description: "Bordado de nombre en 2 batas de chef", ServiceType: "BORDADO", Quantity: 2, Total: "90.00", DueDays: 5, Urgent: false},
	{ClientIndex: 4, Description: "Estampado de delantales con logo del restaurante", ServiceType: "ESTAMPADO", Quantity: 15, Total: "375.00", DueDays: 10, Urgent: false},
}
