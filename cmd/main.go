package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/DamirBesirovic/tradeflow/internal/config"
	"github.com/DamirBesirovic/tradeflow/internal/credentials"
	"github.com/DamirBesirovic/tradeflow/internal/gateway"
	"github.com/DamirBesirovic/tradeflow/internal/logger"
	"github.com/DamirBesirovic/tradeflow/internal/model"
	"github.com/DamirBesirovic/tradeflow/internal/notify"
	"github.com/DamirBesirovic/tradeflow/internal/service"
	"github.com/DamirBesirovic/tradeflow/internal/session"
	"github.com/DamirBesirovic/tradeflow/internal/storage/imgbb"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
)

const usage = `tradeflow <command> [flags]

Commands:
  login           log in and store credentials
  logout          forget stored credentials
  whoami          show the current session
  register        create a user account
  register-seller create a seller account (two-phase)
  profile         show the full profile
  ads             list|my|get|create|delete listings
  cities          list|create|update|delete cities
  categories      list|create|update|delete categories
  requests        send|inbox|read|get contact requests
  users           list all accounts (admin)
  upload          upload an image to the image host
  version         print build information
`

type app struct {
	cfg      *config.Config
	logger   *logger.Logger
	creds    model.CredentialStore
	session  *session.Manager
	auth     *service.Auth
	oglasi   *service.Oglasi
	katalog  *service.Katalog
	zahtevi  *service.Zahtevi
	images   *imgbb.Client
	notifier model.Notifier
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	credPath := cfg.Credentials.Path
	if credPath == "" {
		credPath, err = credentials.DefaultPath()
		if err != nil {
			logger.Fatal("failed to resolve credential path", "error", err)
		}
	}

	a := &app{cfg: cfg, logger: logger}
	a.creds = credentials.NewFileStore(credPath)
	a.notifier = notify.NewConsole(os.Stderr)

	gw := gateway.New(cfg.API.BaseURL, cfg.API.Timeout, a.creds, a.notifier, logger)
	a.auth = service.NewAuth(gw, a.creds, logger)
	a.oglasi = service.NewOglasi(gw, logger)
	a.katalog = service.NewKatalog(gw)
	a.zahtevi = service.NewZahtevi(gw)
	a.images = imgbb.NewClient(cfg.ImgBB.Key)
	a.session = session.NewManager(a.creds, a.auth, logger)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		logger.Fatal("command failed", "command", os.Args[1], "error", err)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.runLogin(ctx, args)
	case "logout":
		a.session.Logout()
		a.notifier.Success("Odjavljeni ste")
		return nil
	case "whoami":
		return a.runWhoami(ctx)
	case "register":
		return a.runRegister(ctx, args)
	case "register-seller":
		return a.runRegisterSeller(ctx, args)
	case "profile":
		return a.runProfile(ctx)
	case "ads":
		return a.runAds(ctx, args)
	case "cities":
		return a.runCities(ctx, args)
	case "categories":
		return a.runCategories(ctx, args)
	case "requests":
		return a.runRequests(ctx, args)
	case "users":
		return a.runUsers(ctx)
	case "upload":
		return a.runUpload(ctx, args)
	case "version":
		fmt.Printf("tradeflow %s (built %s)\n", buildVersion, buildDate)
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) runLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("u", "", "username (email)")
	password := fs.String("p", "", "password")
	fs.Parse(args)

	if *username == "" || *password == "" {
		return fmt.Errorf("both -u and -p are required")
	}

	resp, err := a.auth.Login(ctx, model.LoginRequest{Username: *username, Password: *password})
	if err != nil {
		return err
	}

	user, err := a.auth.Profile(ctx)
	if err != nil {
		// Token exchange worked but hydration did not: stay consistent
		// with the bootstrap rule and roll back to anonymous.
		a.session.Logout()
		return fmt.Errorf("login succeeded but profile fetch failed: %w", err)
	}

	a.session.LoginSuccess(user, resp.JwtToken)
	a.notifier.Success("Uspešno ste se prijavili")
	return nil
}

func (a *app) runWhoami(ctx context.Context) error {
	a.session.Bootstrap(ctx)

	state := a.session.State()
	if !state.IsAuthenticated {
		fmt.Println("not logged in")
		return nil
	}

	u := state.User
	fmt.Printf("%s %s <%s>\n", u.Ime, u.Prezime, u.Email)
	fmt.Printf("roles: %v\n", u.Roles)
	if a.session.HasRole(model.RoleSeller) {
		fmt.Printf("firma: %s\n", u.ImeFirme)
	}
	return nil
}

func (a *app) runRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	username := fs.String("u", "", "username (email)")
	password := fs.String("p", "", "password")
	ime := fs.String("ime", "", "first name")
	prezime := fs.String("prezime", "", "last name")
	fs.Parse(args)

	err := a.auth.Register(ctx, model.RegisterRequest{
		Username: *username,
		Password: *password,
		Ime:      *ime,
		Prezime:  *prezime,
	})
	if err != nil {
		return err
	}
	a.notifier.Success("Uspešno ste se registrovali")
	return nil
}

func (a *app) runRegisterSeller(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register-seller", flag.ExitOnError)
	username := fs.String("u", "", "username (email)")
	password := fs.String("p", "", "password")
	ime := fs.String("ime", "", "first name")
	prezime := fs.String("prezime", "", "last name")
	firma := fs.String("firma", "", "company name")
	bio := fs.String("bio", "", "company bio")
	phone := fs.String("phone", "", "phone number")
	pfp := fs.String("pfp", "", "profile image URL")
	fs.Parse(args)

	result, err := a.auth.SignUpSeller(ctx,
		model.RegisterRequest{Username: *username, Password: *password, Ime: *ime, Prezime: *prezime},
		model.RegisterSellerRequest{Bio: *bio, ImeFirme: *firma, PhoneNumber: *phone, PfpURL: *pfp},
	)
	if err != nil {
		if result.AccountCreated {
			a.notifier.Error("Nalog je kreiran, ali profil prodavca nije. Prijavite se i pokušajte ponovo.")
		}
		return err
	}
	a.notifier.Success("Uspešno ste se registrovali kao prodavac")
	return nil
}

func (a *app) runProfile(ctx context.Context) error {
	user, err := a.auth.Profile(ctx)
	if err != nil {
		return err
	}
	return printJSON(user)
}

func (a *app) runAds(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: ads list|my|get|create|delete")
	}

	switch sub, rest := args[0], args[1:]; sub {
	case "list":
		fs := flag.NewFlagSet("ads list", flag.ExitOnError)
		page := fs.Int("page", 1, "page number")
		size := fs.Int("size", 20, "page size")
		search := fs.String("search", "", "search term")
		kategorija := fs.String("kategorija", "", "category filter")
		grad := fs.String("grad", "", "city filter")
		minPrice := fs.Float64("min", -1, "minimum price")
		maxPrice := fs.Float64("max", -1, "maximum price")
		fs.Parse(rest)

		filter := model.OglasFilter{
			Page:       *page,
			PageSize:   *size,
			Search:     *search,
			Kategorija: *kategorija,
			Grad:       *grad,
		}
		if *minPrice >= 0 {
			filter.MinPrice = minPrice
		}
		if *maxPrice >= 0 {
			filter.MaxPrice = maxPrice
		}

		result, err := a.oglasi.List(ctx, filter)
		if err != nil {
			return err
		}
		return printJSON(result)
	case "my":
		fs := flag.NewFlagSet("ads my", flag.ExitOnError)
		page := fs.Int("page", 1, "page number")
		size := fs.Int("size", 20, "page size")
		fs.Parse(rest)

		result, err := a.oglasi.MyAds(ctx, *page, *size)
		if err != nil {
			return err
		}
		return printJSON(result)
	case "get":
		if len(rest) != 1 {
			return fmt.Errorf("usage: ads get <id>")
		}
		oglas, err := a.oglasi.Get(ctx, rest[0])
		if err != nil {
			return err
		}
		return printJSON(oglas)
	case "create":
		fs := flag.NewFlagSet("ads create", flag.ExitOnError)
		naslov := fs.String("naslov", "", "title")
		opis := fs.String("opis", "", "description")
		materijal := fs.String("materijal", "", "material")
		cena := fs.Float64("cena", 0, "price")
		mesto := fs.String("mesto", "", "place")
		kategorija := fs.String("kategorija-id", "", "category id")
		grad := fs.String("grad-id", "", "city id")
		var images stringList
		fs.Var(&images, "image", "image file to upload (repeatable)")
		fs.Parse(rest)

		urls := make([]string, 0, len(images))
		for _, path := range images {
			imgURL, err := a.uploadFile(ctx, path)
			if err != nil {
				return err
			}
			urls = append(urls, imgURL)
		}

		err := a.oglasi.Create(ctx, model.CreateOglas{
			Naslov:       *naslov,
			Opis:         *opis,
			Materijal:    *materijal,
			Cena:         *cena,
			Mesto:        *mesto,
			ImageURLs:    urls,
			KategorijaID: *kategorija,
			GradID:       *grad,
		})
		if err != nil {
			return err
		}
		a.notifier.Success("Oglas je kreiran")
		return nil
	case "delete":
		if len(rest) != 1 {
			return fmt.Errorf("usage: ads delete <id>")
		}
		if err := a.oglasi.Delete(ctx, rest[0]); err != nil {
			return err
		}
		a.notifier.Success("Oglas je obrisan")
		return nil
	default:
		return fmt.Errorf("unknown ads subcommand %q", sub)
	}
}

func (a *app) runCities(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: cities list|create|update|delete")
	}

	switch sub, rest := args[0], args[1:]; sub {
	case "list":
		gradovi, err := a.katalog.Gradovi(ctx)
		if err != nil {
			return err
		}
		return printJSON(gradovi)
	case "create":
		if len(rest) != 1 {
			return fmt.Errorf("usage: cities create <name>")
		}
		return a.katalog.CreateGrad(ctx, rest[0])
	case "update":
		if len(rest) != 2 {
			return fmt.Errorf("usage: cities update <id> <name>")
		}
		return a.katalog.UpdateGrad(ctx, rest[0], rest[1])
	case "delete":
		if len(rest) != 1 {
			return fmt.Errorf("usage: cities delete <id>")
		}
		return a.katalog.DeleteGrad(ctx, rest[0])
	default:
		return fmt.Errorf("unknown cities subcommand %q", sub)
	}
}

func (a *app) runCategories(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: categories list|create|update|delete")
	}

	switch sub, rest := args[0], args[1:]; sub {
	case "list":
		kategorije, err := a.katalog.Kategorije(ctx)
		if err != nil {
			return err
		}
		return printJSON(kategorije)
	case "create":
		if len(rest) != 1 {
			return fmt.Errorf("usage: categories create <name>")
		}
		return a.katalog.CreateKategorija(ctx, rest[0])
	case "update":
		if len(rest) != 2 {
			return fmt.Errorf("usage: categories update <id> <name>")
		}
		return a.katalog.UpdateKategorija(ctx, rest[0], rest[1])
	case "delete":
		if len(rest) != 1 {
			return fmt.Errorf("usage: categories delete <id>")
		}
		return a.katalog.DeleteKategorija(ctx, rest[0])
	default:
		return fmt.Errorf("unknown categories subcommand %q", sub)
	}
}

func (a *app) runRequests(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: requests send|inbox|read|get")
	}

	switch sub, rest := args[0], args[1:]; sub {
	case "send":
		fs := flag.NewFlagSet("requests send", flag.ExitOnError)
		oglasID := fs.String("oglas", "", "listing id")
		gradID := fs.String("grad", "", "city id")
		kolicina := fs.Float64("kolicina", 0, "quantity")
		poruka := fs.String("poruka", "", "message")
		telefon := fs.String("telefon", "", "phone number")
		fs.Parse(rest)

		err := a.zahtevi.Create(ctx, model.CreateZahtev{
			OglasID:  *oglasID,
			GradID:   *gradID,
			Kolicina: *kolicina,
			Poruka:   *poruka,
			Telefon:  *telefon,
		})
		if err != nil {
			return err
		}
		a.notifier.Success("Zahtev je poslat")
		return nil
	case "inbox":
		fs := flag.NewFlagSet("requests inbox", flag.ExitOnError)
		page := fs.Int("page", 1, "page number")
		size := fs.Int("size", 7, "page size")
		unread := fs.Bool("unread", false, "only unread requests")
		fs.Parse(rest)

		var procitano *bool
		if *unread {
			f := false
			procitano = &f
		}

		result, err := a.zahtevi.Inbox(ctx, *page, *size, procitano)
		if err != nil {
			return err
		}
		return printJSON(result)
	case "read":
		if len(rest) != 1 {
			return fmt.Errorf("usage: requests read <id>")
		}
		return a.zahtevi.MarkAsRead(ctx, rest[0])
	case "get":
		if len(rest) != 1 {
			return fmt.Errorf("usage: requests get <id>")
		}
		zahtev, err := a.zahtevi.GetWithOglas(ctx, rest[0])
		if err != nil {
			return err
		}
		return printJSON(zahtev)
	default:
		return fmt.Errorf("unknown requests subcommand %q", sub)
	}
}

func (a *app) runUsers(ctx context.Context) error {
	users, err := a.auth.AllUsers(ctx)
	if err != nil {
		return err
	}
	return printJSON(users)
}

func (a *app) runUpload(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: upload <file>")
	}
	imgURL, err := a.uploadFile(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Println(imgURL)
	return nil
}

func (a *app) uploadFile(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer f.Close()

	imgURL, err := a.images.Upload(ctx, f.Name(), f)
	if err != nil {
		return "", fmt.Errorf("failed to upload image %s: %w", path, err)
	}
	return imgURL, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// stringList collects repeated flag values.
type stringList []string

func (s *stringList) String() string { return fmt.Sprint(*s) }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}
