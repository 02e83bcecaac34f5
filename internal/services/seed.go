package services

import (
	"time"

	"coffee-app/internal/models"
)

// Демо-данные первого запуска. Идентификаторы фиксированные,
// мобильный клиент рассчитывает на них при первом входе.

func defaultClients() []models.Client {
	return []models.Client{
		{ID: "1", Name: "EXTRAÇÃO DE CAFÉS LTDA", Address: "RUA JOSÉ PAULINO, 1028", Neighborhood: "CENTRO", City: "CAMPINAS", Contact: "(19) 3232-2982", Location: models.GeoPoint{Latitude: -22.9071, Longitude: -47.0573}},
		{ID: "2", Name: "CAFÉ PACAEMBU LTDA", Address: "RUA BARÃO DE JAGUARA, 707", Neighborhood: "CENTRO", City: "CAMPINAS", Contact: "(19) 3232-9971", Location: models.GeoPoint{Latitude: -22.9025, Longitude: -47.0547}},
		{ID: "3", Name: "CAFÉS FINOS LTDA", Address: "RUA CORONEL QUIRINO, 1020", Neighborhood: "CAMBUÍ", City: "CAMPINAS", Contact: "(19) 3252-5020", Location: models.GeoPoint{Latitude: -22.8936, Longitude: -47.0524}},
		{ID: "4", Name: "CAFÉ BRASIL LTDA", Address: "AV. FRANCISCO GLICÉRIO, 1270", Neighborhood: "CENTRO", City: "CAMPINAS", Contact: "(19) 3232-1234", Location: models.GeoPoint{Latitude: -22.9033, Longitude: -47.0553}},
		{ID: "5", Name: "CAFÉ JAGUARI LTDA", Address: "RUA GENERAL OSÓRIO, 1020", Neighborhood: "CENTRO", City: "CAMPINAS", Contact: "(19) 3233-4567", Location: models.GeoPoint{Latitude: -22.9029, Longitude: -47.0561}},
		{ID: "6", Name: "CAFÉ ANHANGUERA LTDA", Address: "AV. MORAES SALES, 1800", Neighborhood: "CENTRO", City: "CAMPINAS", Contact: "(19) 3234-5678", Location: models.GeoPoint{Latitude: -22.9012, Longitude: -47.0583}},
		{ID: "7", Name: "CAFÉ BARÃO LTDA", Address: "RUA BARÃO DE JAGUARA, 1200", Neighborhood: "CENTRO", City: "CAMPINAS", Contact: "(19) 3235-6789", Location: models.GeoPoint{Latitude: -22.9025, Longitude: -47.0547}},
		{ID: "8", Name: "CAFÉ BANDEIRANTES LTDA", Address: "AV. BRASIL, 1500", Neighborhood: "GUANABARA", City: "CAMPINAS", Contact: "(19) 3236-7890", Location: models.GeoPoint{Latitude: -22.9098, Longitude: -47.0631}},
		{ID: "9", Name: "CAFÉ TAQUARAL LTDA", Address: "AV. NORTE SUL, 1000", Neighborhood: "TAQUARAL", City: "CAMPINAS", Contact: "(19) 3237-8901", Location: models.GeoPoint{Latitude: -22.8867, Longitude: -47.0506}},
		{ID: "10", Name: "CAFÉ FLAMBOYANT LTDA", Address: "RUA CONCEIÇÃO, 233", Neighborhood: "CENTRO", City: "CAMPINAS", Contact: "(19) 3238-9012", Location: models.GeoPoint{Latitude: -22.9033, Longitude: -47.0553}},
		{ID: "11", Name: "CAFÉ CASTELO LTDA", Address: "AV. JOHN BOYD DUNLOP, 500", Neighborhood: "CASTELO", City: "CAMPINAS", Contact: "(19) 3239-0123", Location: models.GeoPoint{Latitude: -22.9336, Longitude: -47.1075}},
		{ID: "12", Name: "CAFÉ PRIMAVERA LTDA", Address: "RUA MARIA MONTEIRO, 1000", Neighborhood: "CAMBUÍ", City: "CAMPINAS", Contact: "(19) 3240-1234", Location: models.GeoPoint{Latitude: -22.8936, Longitude: -47.0524}},
		{ID: "13", Name: "CAFÉ NOVA CAMPINAS LTDA", Address: "AV. JOSÉ DE SOUZA CAMPOS, 1200", Neighborhood: "NOVA CAMPINAS", City: "CAMPINAS", Contact: "(19) 3241-2345", Location: models.GeoPoint{Latitude: -22.8936, Longitude: -47.0524}},
		{ID: "14", Name: "CAFÉ CAMBUÍ LTDA", Address: "RUA CORONEL QUIRINO, 1500", Neighborhood: "CAMBUÍ", City: "CAMPINAS", Contact: "(19) 3242-3456", Location: models.GeoPoint{Latitude: -22.8936, Longitude: -47.0524}},
		{ID: "15", Name: "CAFÉ BOSQUE LTDA", Address: "AV. DAS AMOREIRAS, 2000", Neighborhood: "JARDIM DO LAGO", City: "CAMPINAS", Contact: "(19) 3243-4567", Location: models.GeoPoint{Latitude: -22.9336, Longitude: -47.1075}},
		{ID: "16", Name: "CAFÉ SHOPPING LTDA", Address: "AV. IGUATEMI, 777", Neighborhood: "VILA BRANDINA", City: "CAMPINAS", Contact: "(19) 3244-5678", Location: models.GeoPoint{Latitude: -22.8670, Longitude: -47.0444}},
		{ID: "17", Name: "CAFÉ DOM PEDRO LTDA", Address: "ROD. DOM PEDRO I, KM 137", Neighborhood: "JARDIM SANTA GENEBRA", City: "CAMPINAS", Contact: "(19) 3245-6789", Location: models.GeoPoint{Latitude: -22.8489, Longitude: -47.0494}},
		{ID: "18", Name: "CAFÉ UNICAMP LTDA", Address: "RUA ALBERT EINSTEIN, 400", Neighborhood: "CIDADE UNIVERSITÁRIA", City: "CAMPINAS", Contact: "(19) 3246-7890", Location: models.GeoPoint{Latitude: -22.8184, Longitude: -47.0647}},
		{ID: "19", Name: "CAFÉ PUCCAMP LTDA", Address: "ROD. DOM PEDRO I, KM 136", Neighborhood: "PARQUE DAS UNIVERSIDADES", City: "CAMPINAS", Contact: "(19) 3247-8901", Location: models.GeoPoint{Latitude: -22.8489, Longitude: -47.0494}},
		{ID: "20", Name: "CAFÉ GALLERIA LTDA", Address: "RUA BARÃO DE ITAPURA, 950", Neighborhood: "BOTAFOGO", City: "CAMPINAS", Contact: "(19) 3248-9012", Location: models.GeoPoint{Latitude: -22.9025, Longitude: -47.0547}},
		{ID: "21", Name: "CAFÉ TERMINAL LTDA", Address: "RUA DR. RICARDO, 400", Neighborhood: "CENTRO", City: "CAMPINAS", Contact: "(19) 3249-0123", Location: models.GeoPoint{Latitude: -22.9033, Longitude: -47.0553}},
		{ID: "22", Name: "CAFÉ ESTAÇÃO LTDA", Address: "PRAÇA MARECHAL FLORIANO PEIXOTO, 10", Neighborhood: "CENTRO", City: "CAMPINAS", Contact: "(19) 3250-1234", Location: models.GeoPoint{Latitude: -22.9033, Longitude: -47.0553}},
		{ID: "23", Name: "CAFÉ CENTRAL LTDA", Address: "AV. CAMPOS SALES, 890", Neighborhood: "CENTRO", City: "CAMPINAS", Contact: "(19) 3251-2345", Location: models.GeoPoint{Latitude: -22.9033, Longitude: -47.0553}},
		{ID: "24", Name: "CAFÉ SOLAR LTDA", Address: "AV. JÚLIO PRESTES, 500", Neighborhood: "TAQUARAL", City: "CAMPINAS", Contact: "(19) 3252-3456", Location: models.GeoPoint{Latitude: -22.8867, Longitude: -47.0506}},
		{ID: "25", Name: "CAFÉ LAGOA LTDA", Address: "AV. HEITOR PENTEADO, 1800", Neighborhood: "TAQUARAL", City: "CAMPINAS", Contact: "(19) 3253-4567", Location: models.GeoPoint{Latitude: -22.8867, Longitude: -47.0506}},
		{ID: "26", Name: "CAFÉ PARQUE LTDA", Address: "AV. DR. HEITOR PENTEADO, 2000", Neighborhood: "PARQUE TAQUARAL", City: "CAMPINAS", Contact: "(19) 3254-5678", Location: models.GeoPoint{Latitude: -22.8867, Longitude: -47.0506}},
		{ID: "27", Name: "CAFÉ PORTUGAL LTDA", Address: "AV. PRINCESA D'OESTE, 1200", Neighborhood: "JARDIM PROENÇA", City: "CAMPINAS", Contact: "(19) 3255-6789", Location: models.GeoPoint{Latitude: -22.9098, Longitude: -47.0631}},
		{ID: "28", Name: "CAFÉ PROENÇA LTDA", Address: "RUA JORGE MIRANDA, 150", Neighborhood: "JARDIM PROENÇA", City: "CAMPINAS", Contact: "(19) 3256-7890", Location: models.GeoPoint{Latitude: -22.9098, Longitude: -47.0631}},
		{ID: "29", Name: "CAFÉ GUARANI LTDA", Address: "AV. GUARANI, 800", Neighborhood: "VILA JOÃO JORGE", City: "CAMPINAS", Contact: "(19) 3257-8901", Location: models.GeoPoint{Latitude: -22.9336, Longitude: -47.1075}},
		{ID: "30", Name: "CAFÉ OURO VERDE LTDA", Address: "AV. OROSIMBO MAIA, 1700", Neighborhood: "VILA ITAPURA", City: "CAMPINAS", Contact: "(19) 3258-9012", Location: models.GeoPoint{Latitude: -22.9025, Longitude: -47.0547}},
	}
}

func defaultVisits(now time.Time) []models.Visit {
	clients := []models.Client{
		{ID: "1", Name: "Café do Porto", Address: "Av. Jerônimo Monteiro, 321", Neighborhood: "Centro", City: "Vitória", Contact: "(27) 3223-4567", Location: models.GeoPoint{Latitude: -20.3155, Longitude: -40.3128}},
		{ID: "2", Name: "Padaria Vitória", Address: "Rua Sete de Setembro, 145", Neighborhood: "Centro", City: "Vitória", Contact: "(27) 3324-8901", Location: models.GeoPoint{Latitude: -20.3189, Longitude: -40.3378}},
		{ID: "3", Name: "Café da Praia", Address: "Av. Champagnat, 501", Neighborhood: "Praia da Costa", City: "Vila Velha", Contact: "(27) 3329-1234", Location: models.GeoPoint{Latitude: -20.3234, Longitude: -40.2876}},
		{ID: "4", Name: "Lanchonete Serra Verde", Address: "Av. Central, 789", Neighborhood: "Laranjeiras", City: "Serra", Contact: "(27) 3338-5678", Location: models.GeoPoint{Latitude: -20.1689, Longitude: -40.2634}},
	}
	equipments := []models.Equipment{
		{ID: "1", ClientID: "1", Brand: "Saeco", Model: "Aulika Top HSC", MillNumber: "ML001-VT", MachineNumber: "MC001-VT"},
		{ID: "2", ClientID: "2", Brand: "Jura", Model: "X8 Professional", MillNumber: "ML002-VT", MachineNumber: "MC002-VT"},
		{ID: "3", ClientID: "3", Brand: "Delonghi", Model: "Prima Donna Elite", MillNumber: "ML003-VV", MachineNumber: "MC003-VV"},
		{ID: "4", ClientID: "4", Brand: "Franke", Model: "A600 FM", MillNumber: "ML004-SR", MachineNumber: "MC004-SR"},
	}

	today := now.Format("2006-01-02")
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")

	return []models.Visit{
		{ID: "1", ClientID: "1", Client: clients[0], Equipment: equipments[0], Type: models.VisitPreventive, ScheduledDate: today, ScheduledTime: "08:30", Status: models.VisitPending, TechnicianID: "1"},
		{ID: "2", ClientID: "2", Client: clients[1], Equipment: equipments[1], Type: models.VisitCorrectiveTechnical, ScheduledDate: today, ScheduledTime: "10:00", Status: models.VisitPending, TechnicianID: "2"},
		{ID: "3", ClientID: "3", Client: clients[2], Equipment: equipments[2], Type: models.VisitPreventive, ScheduledDate: today, ScheduledTime: "14:30", Status: models.VisitPending, TechnicianID: "3"},
		{ID: "4", ClientID: "4", Client: clients[3], Equipment: equipments[3], Type: models.VisitCorrectiveOperational, ScheduledDate: tomorrow, ScheduledTime: "09:00", Status: models.VisitPending, TechnicianID: "1"},
	}
}

// Шаблоны автогенерируемых визитов на завтра и послезавтра.
func autoVisitTomorrow(id, date string) models.Visit {
	return models.Visit{
		ID:       id,
		ClientID: "5",
		Client: models.Client{
			ID: "5", Name: "Café Jardim Camburi", Address: "Av. Dante Michelini, 2500",
			Neighborhood: "Jardim Camburi", City: "Vitória", Contact: "(27) 3317-9012",
			Location: models.GeoPoint{Latitude: -20.2539, Longitude: -40.2788},
		},
		Equipment:     models.Equipment{ID: "5", ClientID: "5", Brand: "Saeco", Model: "Aulika Focus", MillNumber: "ML005-VT", MachineNumber: "MC005-VT"},
		Type:          models.VisitPreventive,
		ScheduledDate: date,
		ScheduledTime: "09:00",
		Status:        models.VisitPending,
		TechnicianID:  "1",
	}
}

func autoVisitDayAfter(id, date string) models.Visit {
	return models.Visit{
		ID:       id,
		ClientID: "6",
		Client: models.Client{
			ID: "6", Name: "Restaurante Itaparica", Address: "Rua Aleixo Netto, 432",
			Neighborhood: "Itaparica", City: "Vila Velha", Contact: "(27) 3389-3456",
			Location: models.GeoPoint{Latitude: -20.3445, Longitude: -40.2923},
		},
		Equipment:     models.Equipment{ID: "6", ClientID: "6", Brand: "Necta", Model: "Koro Max Prime", MillNumber: "ML006-VV", MachineNumber: "MC006-VV"},
		Type:          models.VisitCorrectiveTechnical,
		ScheduledDate: date,
		ScheduledTime: "14:00",
		Status:        models.VisitPending,
		TechnicianID:  "1",
	}
}

func defaultTechnicians(now time.Time) []models.Technician {
	ts := now.Format(time.RFC3339)
	return []models.Technician{
		{
			ID: "1", Name: "Klaus Silva", Email: "klaus@coffee.com", Phone: "(27) 99999-1111",
			Status: models.TechActive,
			Location: models.TechnicianLocation{
				Latitude: -20.3155, Longitude: -40.3128,
				Address: "Av. Jerônimo Monteiro, 321 - Centro, Vitória - ES", LastUpdate: ts,
			},
			CurrentVisit: &models.CurrentVisit{
				ClientName: "Café do Porto", ClientAddress: "Av. Jerônimo Monteiro, 321",
				StartTime: "14:30", EstimatedEnd: "16:00", VisitType: models.VisitPreventive,
			},
			TodayStats: models.TodayStats{Completed: 4, Pending: 2, Distance: 45.2},
		},
		{
			ID: "2", Name: "João Santos", Email: "joao@coffee.com", Phone: "(27) 99999-2222",
			Status: models.TechBusy,
			Location: models.TechnicianLocation{
				Latitude: -20.2976, Longitude: -40.2925,
				Address: "Av. Carlos Gomes, 200 - Praia do Canto, Vitória - ES", LastUpdate: ts,
			},
			CurrentVisit: &models.CurrentVisit{
				ClientName: "Padaria Vitória", ClientAddress: "Av. Carlos Gomes, 200",
				StartTime: "15:15", EstimatedEnd: "16:30", VisitType: models.VisitCorrectiveTechnical,
			},
			TodayStats: models.TodayStats{Completed: 3, Pending: 3, Distance: 38.7},
		},
		{
			ID: "3", Name: "Edison Lima", Email: "edison@coffee.com", Phone: "(27) 99999-3333",
			Status: models.TechActive,
			Location: models.TechnicianLocation{
				Latitude: -20.3297, Longitude: -40.2925,
				Address: "Rua Henrique Moscoso, 147 - Centro, Vila Velha - ES", LastUpdate: ts,
			},
			TodayStats: models.TodayStats{Completed: 5, Pending: 1, Distance: 52.1},
		},
	}
}
