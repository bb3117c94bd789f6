package main

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/asmendustri/asm-endustri-api/internal/domain/entity"
	"github.com/asmendustri/asm-endustri-api/internal/infrastructure/postgres"
	"github.com/asmendustri/asm-endustri-api/pkg/config"
	"github.com/asmendustri/asm-endustri-api/pkg/logger"
)

// Sample catalog for a fresh installation, skipped when products already
// exist so reruns never duplicate data.
var sampleProducts = []entity.Product{
	{
		Name:        "Mercedes Actros Motor Parçası",
		Description: "Mercedes Actros serisi için orijinal motor parçası. Yüksek kalite ve dayanıklılık garantisi.",
		Category:    "mercedes",
		Price:       decimal.RequireFromString("1250.00"),
		Specifications: mustJSON(map[string]string{
			"Model": "Actros 1841", "Yıl": "2018-2022", "Malzeme": "Çelik döküm", "Garanti": "2 yıl",
		}),
	},
	{
		Name:        "Scania R Serisi Fren Balatası",
		Description: "Scania R serisi kamyonlar için ön fren balatası. Avrupa standartlarında üretilmiştir.",
		Category:    "scania",
		Price:       decimal.RequireFromString("89.50"),
		Specifications: mustJSON(map[string]string{
			"Model": "R420, R480, R520", "Malzeme": "Sinter metal", "Standart": "ECE R90", "Kod": "SCAN-FB-001",
		}),
	},
	{
		Name:        "Renault Premium Direksiyon Kutusu",
		Description: "Renault Premium serisi için direksiyon kutusu. Hidrolik destekli, hassas kontrol sağlar.",
		Category:    "renault",
		Price:       decimal.RequireFromString("2100.00"),
		Specifications: mustJSON(map[string]string{
			"Model": "Premium 420 DXI", "Tip": "Hidrolik", "Oran": "16:1", "Garanti": "3 yıl",
		}),
	},
	{
		Name:        "Man TGS Şanzıman Parçası",
		Description: "Man TGS serisi için şanzıman tamiri parça seti. Orijinal kalite, uygun fiyat.",
		Category:    "man",
		Price:       decimal.RequireFromString("3450.00"),
		Specifications: mustJSON(map[string]string{
			"Model": "TGS 18.400", "Vites": "12+2", "Malzeme": "Alaşım çelik", "Kod": "MAN-SPZ-400",
		}),
	},
	{
		Name:        "Mercedes Axor Egzoz Sistemi",
		Description: "Mercedes Axor için komple egzoz sistemi. Euro 5 normlarına uygun, paslanmaz çelik.",
		Category:    "mercedes",
		Price:       decimal.RequireFromString("1850.00"),
		Specifications: mustJSON(map[string]string{
			"Model": "Axor 1840", "Emisyon": "Euro 5", "Malzeme": "Paslanmaz çelik", "Garanti": "5 yıl",
		}),
	},
	{
		Name:        "Scania Streamline Far Grubu",
		Description: "Scania Streamline için LED far grubu. Yüksek görüş açısı, uzun ömürlü LED teknolojisi.",
		Category:    "scania",
		Price:       decimal.RequireFromString("1650.00"),
		Specifications: mustJSON(map[string]string{
			"Model": "Streamline R", "Tip": "LED", "Güç": "120W", "Renk": "Beyaz",
		}),
	},
	{
		Name:        "Renault Kerax Debriyaj Seti",
		Description: "Renault Kerax için debriyaj disk ve baskı seti. Yüksek tork kapasitesi, uzun ömürlü.",
		Category:    "renault",
		Price:       decimal.RequireFromString("1250.00"),
		Specifications: mustJSON(map[string]string{
			"Model": "Kerax 370", "Çap": "380mm", "Tork": "1850 Nm", "Malzeme": "Sinter metal",
		}),
	},
	{
		Name:        "Man TGX Yüksek Basınç Pompası",
		Description: "Man TGX için yüksek basınç yakıt pompası. Orijinal Bosch üretimi, kalite garantisi.",
		Category:    "man",
		Price:       decimal.RequireFromString("2850.00"),
		Specifications: mustJSON(map[string]string{
			"Model": "TGX 18.440", "Basınç": "1800 bar", "Marka": "Bosch", "Garanti": "2 yıl",
		}),
	},
	{
		Name:        "Mercedes Atego Hava Filtresi",
		Description: "Mercedes Atego için hava filtresi. Yüksek filtrasyon verimi, uzun servis aralığı.",
		Category:    "mercedes",
		Price:       decimal.RequireFromString("125.00"),
		Specifications: mustJSON(map[string]string{
			"Model": "Atego 815", "Tip": "Kuru", "Verim": "99.5%", "Kod": "MB-HF-815",
		}),
	},
	{
		Name:        "Scania R Series Yağ Filtresi",
		Description: "Scania R serisi için yağ filtresi. Orijinal Scania kalitesi, motor koruma sağlar.",
		Category:    "scania",
		Price:       decimal.RequireFromString("85.00"),
		Specifications: mustJSON(map[string]string{
			"Model": "R420, R480", "Kapasite": "2.5L", "Malzeme": "Selüloz", "Değişim": "30.000 km",
		}),
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})
	log.Info().Msg("starting database seed")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("database migration")
	}

	if err := postgres.EnsureAdmin(ctx, pool, "admin@asmendustri.com", "admin123"); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap")
	}
	log.Info().Msg("admin user present")

	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		log.Fatal().Err(err).Msg("count products")
	}
	if count > 0 {
		log.Info().Int("existing", count).Msg("products already present, sample data skipped")
		return
	}

	productRepo := postgres.NewProductRepository(pool)
	for i := range sampleProducts {
		if _, err := productRepo.Create(ctx, &sampleProducts[i]); err != nil {
			log.Fatal().Err(err).Str("product", sampleProducts[i].Name).Msg("insert sample product")
		}
	}
	log.Info().Int("inserted", len(sampleProducts)).Msg("sample products inserted")
}

func mustJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
