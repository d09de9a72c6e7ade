package database

import (
	"fmt"

	"fieldtrack/config"
	outletsRepo "fieldtrack/database/repository/outlets"
	reportsRepo "fieldtrack/database/repository/reports"
	"fieldtrack/utils"
)

// Stores is the document store selected by DOCUMENT_STORE.
type Stores struct {
	Reports reportsRepo.Store
	Writer  reportsRepo.Writer
	Outlets outletsRepo.OutletRepository

	// Set only for the in-memory store.
	MemoryOutlets *outletsRepo.MemoryOutletRepo
}

// OpenStores connects the configured document store. Connection failures are fatal,
// as they are in InitDB and InitFirestore.
func OpenStores(kind string) (*Stores, error) {
	switch kind {
	case "firestore":
		utils.FirebaseInit()
		InitFirestore(utils.FirebaseApp)
		store := reportsRepo.NewFirestoreReportStore(FirestoreClient)
		return &Stores{
			Reports: store,
			Writer:  store,
			Outlets: outletsRepo.NewFirestoreOutletRepo(FirestoreClient, config.AppConfig.CollectionOutlets),
		}, nil
	case "mongo":
		InitDB()
		store := reportsRepo.NewMongoReportStore(Database())
		return &Stores{
			Reports: store,
			Writer:  store,
			Outlets: outletsRepo.NewMongoOutletRepo(Database(), config.AppConfig.CollectionOutlets),
		}, nil
	case "memory":
		store := reportsRepo.NewMemoryStore()
		outlets := outletsRepo.NewMemoryOutletRepo()
		return &Stores{
			Reports:       store,
			Writer:        store,
			Outlets:       outlets,
			MemoryOutlets: outlets,
		}, nil
	default:
		return nil, fmt.Errorf("unknown DOCUMENT_STORE %q", kind)
	}
}
