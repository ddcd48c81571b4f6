package seed

import (
	"context"
	"fmt"
	"time"

	"nhaf/internal/memberid"
	"nhaf/internal/models"
	"nhaf/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	firstNames = []string{
		"Aarati", "Anil", "Asmita", "Bibek", "Bimala", "Deepak", "Dipika", "Ganesh",
		"Gita", "Hari", "Kabita", "Kiran", "Krishna", "Laxmi", "Manish", "Maya",
		"Nabin", "Nirmala", "Prakash", "Pooja", "Rajan", "Rita", "Sagar", "Sabina",
		"Santosh", "Shanti", "Suman", "Sunita", "Umesh", "Yamuna",
	}

	lastNames = []string{
		"Acharya", "Adhikari", "Basnet", "Bhattarai", "Chaudhary", "Dahal", "Gurung",
		"Karki", "Khadka", "Lama", "Magar", "Maharjan", "Pandey", "Poudel", "Rai",
		"Sharma", "Shrestha", "Tamang", "Thapa", "Yadav",
	}

	districts = []string{
		"Kathmandu", "Lalitpur", "Bhaktapur", "Kaski", "Chitwan", "Morang",
		"Banke", "Rupandehi", "Jhapa", "Sunsari",
	}

	specializations = []string{
		"Community Health", "First Aid", "Nursing", "Logistics", "Counselling",
		"Nutrition", "Teaching", "Fundraising",
	}

	availability = []string{"Weekends", "Weekday evenings", "Full time", "Health camps only"}
)

// Factory builds demo entities and persists them.
type Factory struct {
	db     *gorm.DB
	faker  *gofakeit.Faker
	ids    *memberid.Engine
	now    func() time.Time
	dryRun bool
}

// NewFactory returns a Factory. A zero seed picks a random one.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	members := repository.NewMemberRepository(db)
	return &Factory{
		db:     db,
		faker:  gofakeit.New(opts.RandSeed),
		ids:    memberid.NewEngine(members, opts.MemberIDPrefix),
		now:    time.Now,
		dryRun: opts.DryRun,
	}
}

func (f *Factory) name() string {
	return f.faker.RandomString(firstNames) + " " + f.faker.RandomString(lastNames)
}

func (f *Factory) email(name string) string {
	return fmt.Sprintf("%s.%d@%s", slug(name), f.faker.Number(10, 999), f.faker.DomainName())
}

func (f *Factory) phone() string {
	return fmt.Sprintf("98%08d", f.faker.Number(0, 99999999))
}

// pastTime spreads records over the last maxDays days.
func (f *Factory) pastTime(maxDays int) time.Time {
	back := time.Duration(f.faker.Number(0, maxDays*24*60)) * time.Minute
	return f.now().Add(-back)
}

// BuildVolunteerMember builds a published volunteer without persisting it.
func (f *Factory) BuildVolunteerMember(chapterID *uint) *models.Member {
	name := f.name()
	year := f.faker.Number(2015, f.now().Year())
	return &models.Member{
		Name:           name,
		Role:           "Volunteer",
		MemberType:     models.MemberTypeVolunteer,
		Bio:            f.faker.Sentence(12),
		Specialization: f.faker.RandomString(specializations),
		ChapterID:      chapterID,
		Email:          f.email(name),
		Phone:          f.phone(),
		JoinYear:       &year,
		IsActive:       f.faker.Number(1, 10) > 1,
	}
}

// CreateVolunteerMember persists a volunteer with an assigned identifier.
func (f *Factory) CreateVolunteerMember(ctx context.Context, chapterID *uint) (*models.Member, error) {
	m := f.BuildVolunteerMember(chapterID)
	if err := f.ids.Assign(ctx, m); err != nil {
		return nil, err
	}
	if f.dryRun {
		return m, nil
	}
	if err := f.db.WithContext(ctx).Omit("Chapter").Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// CreateVolunteerApplication persists a pending volunteer application.
func (f *Factory) CreateVolunteerApplication(ctx context.Context) (*models.VolunteerApplication, error) {
	name := f.name()
	app := &models.VolunteerApplication{
		Name:           name,
		ContactNumber:  f.phone(),
		Email:          f.email(name),
		Location:       f.faker.RandomString(districts),
		Availability:   f.faker.RandomString(availability),
		PastExperience: f.faker.Sentence(10),
		Status:         models.ApplicationStatusPending,
		SubmittedAt:    f.pastTime(30),
	}
	return app, f.create(ctx, app)
}

// CreateMembershipApplication persists a membership application paid by bank transfer.
func (f *Factory) CreateMembershipApplication(ctx context.Context) (*models.MembershipApplication, error) {
	name := f.name()
	tier := models.MembershipTierGeneral
	if f.faker.Bool() {
		tier = models.MembershipTierActive
	}
	app := &models.MembershipApplication{
		Name:          name,
		Email:         f.email(name),
		Phone:         f.phone(),
		MemberType:    tier,
		PaymentMethod: models.PaymentMethodBank,
		PaymentStatus: models.PaymentStatusPending,
		Status:        models.ApplicationStatusPending,
		SubmittedAt:   f.pastTime(30),
	}
	return app, f.create(ctx, app)
}

// CreateDonation persists a donation. Most are completed; the rest pending.
func (f *Factory) CreateDonation(ctx context.Context, seq int) (*models.Donation, error) {
	methods := []models.PaymentMethod{models.PaymentMethodEsewa, models.PaymentMethodKhalti, models.PaymentMethodBank}
	method := methods[f.faker.Number(0, len(methods)-1)]
	d := &models.Donation{
		Amount:        float64(f.faker.Number(1, 50) * 100),
		PaymentMethod: method,
		Status:        models.PaymentStatusCompleted,
		CreatedAt:     f.pastTime(90),
	}
	if f.faker.Number(1, 4) > 1 {
		d.DonorName = f.name()
		d.DonorEmail = f.email(d.DonorName)
	}
	if f.faker.Number(1, 5) == 1 {
		d.Status = models.PaymentStatusPending
	}
	switch method {
	case models.PaymentMethodEsewa:
		d.PaymentReference = fmt.Sprintf("don-%d-%s", seq, uuid.NewString()[:8])
		d.TransactionID = f.faker.LetterN(7)
	case models.PaymentMethodKhalti:
		d.Pidx = f.faker.LetterN(22)
		d.TransactionID = f.faker.LetterN(10)
	}
	if d.Status != models.PaymentStatusCompleted {
		d.TransactionID = ""
	}
	return d, f.create(ctx, d)
}

// CreateContactMessage persists a contact form submission.
func (f *Factory) CreateContactMessage(ctx context.Context) (*models.ContactMessage, error) {
	name := f.name()
	msg := &models.ContactMessage{
		Name:        name,
		Email:       f.email(name),
		Subject:     f.faker.Sentence(4),
		Message:     f.faker.Paragraph(1, 3, 12, " "),
		SubmittedAt: f.pastTime(60),
	}
	return msg, f.create(ctx, msg)
}

// CreateChatSession persists a short visitor conversation and returns its token.
func (f *Factory) CreateChatSession(ctx context.Context) (string, error) {
	session := uuid.NewString()
	name := f.name()
	start := f.pastTime(14)
	msgs := []models.ChatMessage{
		{SessionID: session, SenderType: models.ChatSenderUser, SenderName: name, Message: f.faker.Question(), CreatedAt: start},
		{SessionID: session, SenderType: models.ChatSenderAdmin, SenderName: "NHAF Team", Message: f.faker.Sentence(10), IsRead: true, CreatedAt: start.Add(5 * time.Minute)},
	}
	if f.faker.Bool() {
		msgs = append(msgs, models.ChatMessage{SessionID: session, SenderType: models.ChatSenderUser, SenderName: name, Message: "Thank you!", CreatedAt: start.Add(9 * time.Minute)})
	}
	if f.dryRun {
		return session, nil
	}
	return session, f.db.WithContext(ctx).Create(&msgs).Error
}

func (f *Factory) create(ctx context.Context, row any) error {
	if f.dryRun {
		return nil
	}
	return f.db.WithContext(ctx).Create(row).Error
}

func slug(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r >= 'a' && r <= 'z':
			out = append(out, r)
		case r == ' ':
			out = append(out, '.')
		}
	}
	return string(out)
}
