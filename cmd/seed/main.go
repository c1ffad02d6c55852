package main

import (
	"context"
	"log"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"qiyada/config"
	"qiyada/internal/model"
	"qiyada/internal/repository"
	"qiyada/internal/rubric"
	"qiyada/internal/service"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)

	seedAdmin(ctx, db)
	seedAssessments(ctx, db)

	log.Println("Seed complete")
}

func seedAdmin(ctx context.Context, db *mongo.Database) {
	userRepo := repository.NewUserRepo(db)

	existing, err := userRepo.GetByUsername(ctx, "admin")
	if err != nil {
		log.Fatalf("Failed to check admin user: %v", err)
	}
	if existing != nil {
		log.Println("Admin user already exists, skipping")
		return
	}

	hash, err := service.HashPassword("admin123")
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := &model.User{
		Username:     "admin",
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		FullName:     "System Administrator",
		Locale:       "en",
	}
	if _, err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	log.Println("Created admin user (username=admin, password=admin123 - change it)")
}

func seedAssessments(ctx context.Context, db *mongo.Database) {
	coll := db.Collection("assessments")

	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to count assessments: %v", err)
	}
	if count > 0 {
		log.Println("Assessments already seeded, skipping")
		return
	}

	assessmentRepo := repository.NewAssessmentRepo(db)

	scenario := &model.Assessment{
		Type: "scenario",
		Title: model.LocalizedText{
			EN: "Leadership Scenarios Assessment",
			AR: "تقييم المواقف القيادية",
		},
		Description: model.LocalizedText{
			EN: "Respond to realistic leadership situations. Each choice reflects a different level of competency.",
			AR: "تعامل مع مواقف قيادية واقعية. كل خيار يعكس مستوى مختلفاً من الكفاءة.",
		},
		Questions: scenarioQuestions(),
		Active:    true,
	}
	if _, err := assessmentRepo.Create(ctx, scenario); err != nil {
		log.Fatalf("Failed to seed scenario assessment: %v", err)
	}

	rating := &model.Assessment{
		Type: "rating",
		Title: model.LocalizedText{
			EN: "Leadership Self-Assessment",
			AR: "التقييم الذاتي للقيادة",
		},
		Description: model.LocalizedText{
			EN: "Rate how well each statement describes your day-to-day leadership behavior.",
			AR: "قيّم مدى انطباق كل عبارة على سلوكك القيادي اليومي.",
		},
		Questions: ratingQuestions(),
		Active:    true,
	}
	if _, err := assessmentRepo.Create(ctx, rating); err != nil {
		log.Fatalf("Failed to seed rating assessment: %v", err)
	}

	log.Println("Seeded scenario and rating assessments")
}

func scenarioQuestions() []model.Question {
	return []model.Question{
		{
			Key:        "Q1",
			Competency: string(rubric.CompetencyVision),
			Prompt: model.LocalizedText{
				EN: "Your team is busy with daily work and nobody can say how it connects to the company's direction. What do you do?",
				AR: "فريقك منشغل بالعمل اليومي ولا أحد يستطيع أن يحدد علاقته بتوجه الشركة. ماذا تفعل؟",
			},
			Options: []model.QuestionOption{
				{Key: "a", Score: 5, Text: model.LocalizedText{
					EN: "Run a session that maps every ongoing task to a strategic goal, and cut what maps to nothing",
					AR: "تنظم جلسة تربط كل مهمة جارية بهدف استراتيجي، وتلغي ما لا يرتبط بشيء",
				}},
				{Key: "b", Score: 3, Text: model.LocalizedText{
					EN: "Share the company strategy deck by email and ask everyone to read it",
					AR: "ترسل عرض استراتيجية الشركة بالبريد وتطلب من الجميع قراءته",
				}},
				{Key: "c", Score: 1, Text: model.LocalizedText{
					EN: "Keep the team focused on delivery; strategy is management's concern",
					AR: "تبقي الفريق مركزاً على الإنجاز؛ فالاستراتيجية شأن الإدارة",
				}},
			},
		},
		{
			Key:        "Q2",
			Competency: string(rubric.CompetencyCommunication),
			Prompt: model.LocalizedText{
				EN: "A major decision you announced is being retold in three contradictory versions. How do you respond?",
				AR: "قرار مهم أعلنته يُتداول الآن بثلاث روايات متناقضة. كيف تتصرف؟",
			},
			Options: []model.QuestionOption{
				{Key: "a", Score: 5, Text: model.LocalizedText{
					EN: "Hold a short all-hands, restate the decision and its rationale, then follow up in writing",
					AR: "تعقد اجتماعاً قصيراً للجميع، تعيد شرح القرار ومبرراته، ثم توثقه كتابياً",
				}},
				{Key: "b", Score: 3, Text: model.LocalizedText{
					EN: "Correct the version you heard most recently and assume it spreads",
					AR: "تصحح الرواية التي سمعتها مؤخراً وتفترض أنها ستنتشر",
				}},
				{Key: "c", Score: 1, Text: model.LocalizedText{
					EN: "Ignore the noise; people will figure it out eventually",
					AR: "تتجاهل الضجيج؛ سيفهم الناس الأمر في النهاية",
				}},
			},
		},
		{
			Key:        "Q3",
			Competency: string(rubric.CompetencyDecisionMaking),
			Prompt: model.LocalizedText{
				EN: "You must choose between two vendors by Friday and the data is incomplete. What do you do?",
				AR: "عليك الاختيار بين مورّدين قبل الجمعة والبيانات غير مكتملة. ماذا تفعل؟",
			},
			Options: []model.QuestionOption{
				{Key: "a", Score: 5, Text: model.LocalizedText{
					EN: "Decide on the best available evidence, record the assumptions and set a review date",
					AR: "تقرر بناءً على أفضل الأدلة المتاحة، وتوثق الافتراضات، وتحدد موعداً للمراجعة",
				}},
				{Key: "b", Score: 3, Text: model.LocalizedText{
					EN: "Ask for a one-week extension to gather more data",
					AR: "تطلب تمديداً لأسبوع لجمع مزيد من البيانات",
				}},
				{Key: "c", Score: 1, Text: model.LocalizedText{
					EN: "Escalate the choice to your manager to avoid blame",
					AR: "تصعّد القرار إلى مديرك لتجنب اللوم",
				}},
			},
		},
		{
			Key:        "Q4",
			Competency: string(rubric.CompetencyTeamBuilding),
			Prompt: model.LocalizedText{
				EN: "Two senior members of your team have stopped talking to each other and work is routing around them. What do you do?",
				AR: "عضوان كبيران في فريقك توقفا عن الحديث والعمل يلتف حولهما. ماذا تفعل؟",
			},
			Options: []model.QuestionOption{
				{Key: "a", Score: 5, Text: model.LocalizedText{
					EN: "Meet each separately to understand the conflict, then facilitate a joint conversation",
					AR: "تلتقي بكل منهما على حدة لفهم الخلاف، ثم تيسّر حواراً مشتركاً",
				}},
				{Key: "b", Score: 3, Text: model.LocalizedText{
					EN: "Restructure assignments so they no longer need to collaborate",
					AR: "تعيد توزيع المهام بحيث لا يحتاجان إلى التعاون",
				}},
				{Key: "c", Score: 1, Text: model.LocalizedText{
					EN: "Stay out of it; adults should resolve their own disputes",
					AR: "تبقى بعيداً؛ فالكبار يحلون خلافاتهم بأنفسهم",
				}},
			},
		},
		{
			Key:        "Q5",
			Competency: string(rubric.CompetencyIntegrity),
			Prompt: model.LocalizedText{
				EN: "You discover a reporting error that makes your team's results look better than they are. Nobody else has noticed. What do you do?",
				AR: "اكتشفت خطأ في التقارير يجعل نتائج فريقك تبدو أفضل من الواقع. لم يلاحظه أحد. ماذا تفعل؟",
			},
			Options: []model.QuestionOption{
				{Key: "a", Score: 5, Text: model.LocalizedText{
					EN: "Correct the report immediately and inform stakeholders of the error",
					AR: "تصحح التقرير فوراً وتبلغ أصحاب المصلحة بالخطأ",
				}},
				{Key: "b", Score: 3, Text: model.LocalizedText{
					EN: "Fix the numbers quietly going forward without flagging the past error",
					AR: "تصحح الأرقام مستقبلاً بهدوء دون الإشارة إلى الخطأ السابق",
				}},
				{Key: "c", Score: 1, Text: model.LocalizedText{
					EN: "Leave it; the error favors the team and will wash out over time",
					AR: "تتركه؛ فالخطأ في صالح الفريق وسيتلاشى مع الوقت",
				}},
			},
		},
		{
			Key:        "Q6",
			Competency: string(rubric.CompetencyAdaptability),
			Prompt: model.LocalizedText{
				EN: "A reorganization cancels the project your team spent three months on. How do you lead the first week after the news?",
				AR: "إعادة هيكلة ألغت المشروع الذي عمل عليه فريقك ثلاثة أشهر. كيف تقود الأسبوع الأول بعد الخبر؟",
			},
			Options: []model.QuestionOption{
				{Key: "a", Score: 5, Text: model.LocalizedText{
					EN: "Acknowledge the loss openly, salvage reusable work, and reframe priorities with the team",
					AR: "تعترف بالخسارة صراحة، وتستخلص ما يمكن إعادة استخدامه، وتعيد ترتيب الأولويات مع الفريق",
				}},
				{Key: "b", Score: 3, Text: model.LocalizedText{
					EN: "Move straight to the new priorities and avoid dwelling on the cancellation",
					AR: "تنتقل مباشرة إلى الأولويات الجديدة وتتجنب الخوض في الإلغاء",
				}},
				{Key: "c", Score: 1, Text: model.LocalizedText{
					EN: "Let the team vent while you privately lobby to reverse the decision",
					AR: "تترك الفريق يفرّغ غضبه بينما تسعى سراً لإلغاء القرار",
				}},
			},
		},
		{
			Key:        "Q7",
			Competency: string(rubric.CompetencyEmpowerment),
			Prompt: model.LocalizedText{
				EN: "A capable team member asks to lead the next client presentation, which you usually deliver. What do you do?",
				AR: "عضو كفء في الفريق يطلب قيادة العرض القادم للعميل، وهو ما تقدمه أنت عادة. ماذا تفعل؟",
			},
			Options: []model.QuestionOption{
				{Key: "a", Score: 5, Text: model.LocalizedText{
					EN: "Hand it over, coach them through preparation, and attend as support only",
					AR: "تسند إليه المهمة، وتدربه أثناء التحضير، وتحضر داعماً فقط",
				}},
				{Key: "b", Score: 3, Text: model.LocalizedText{
					EN: "Let them present one section while you keep the critical parts",
					AR: "تتركه يقدم جزءاً واحداً بينما تحتفظ بالأجزاء الحساسة",
				}},
				{Key: "c", Score: 1, Text: model.LocalizedText{
					EN: "Decline; the client relationship is too important to risk",
					AR: "ترفض؛ فعلاقة العميل أهم من أن تخاطر بها",
				}},
			},
		},
		{
			Key:        "Q8",
			Competency: string(rubric.CompetencyEmotionalIntelligence),
			Prompt: model.LocalizedText{
				EN: "In a review meeting, a usually calm colleague responds to your feedback with unexpected anger. What do you do?",
				AR: "في اجتماع مراجعة، ردّ زميل هادئ عادة على ملاحظاتك بغضب غير متوقع. ماذا تفعل؟",
			},
			Options: []model.QuestionOption{
				{Key: "a", Score: 5, Text: model.LocalizedText{
					EN: "Pause the discussion, acknowledge their reaction, and offer to continue one-on-one",
					AR: "توقف النقاش، وتعترف بانفعاله، وتعرض مواصلة الحديث على انفراد",
				}},
				{Key: "b", Score: 3, Text: model.LocalizedText{
					EN: "Continue the agenda and check in with them after the meeting",
					AR: "تواصل جدول الأعمال وتتفقد حاله بعد الاجتماع",
				}},
				{Key: "c", Score: 1, Text: model.LocalizedText{
					EN: "Match their tone so the team sees you won't be pushed around",
					AR: "ترد بنفس الحدة ليعلم الفريق أنك لا تُستفز",
				}},
			},
		},
	}
}

func ratingQuestions() []model.Question {
	statements := []struct {
		competency rubric.Competency
		en, ar     string
	}{
		{rubric.CompetencyVision, "I connect my team's weekly work to a clear long-term direction.", "أربط عمل فريقي الأسبوعي بتوجه واضح طويل المدى."},
		{rubric.CompetencyVision, "I regularly scan for changes that could affect our plans.", "أراقب باستمرار التغيرات التي قد تؤثر على خططنا."},
		{rubric.CompetencyCommunication, "People leave my meetings knowing exactly what was decided.", "يغادر الحاضرون اجتماعاتي وهم يعرفون تماماً ما تقرر."},
		{rubric.CompetencyCommunication, "I listen to understand before I reply.", "أستمع لأفهم قبل أن أرد."},
		{rubric.CompetencyDecisionMaking, "I make timely decisions even with incomplete information.", "أتخذ قرارات في وقتها حتى مع نقص المعلومات."},
		{rubric.CompetencyDecisionMaking, "I own the outcomes of my decisions, good or bad.", "أتحمل نتائج قراراتي، حسنة كانت أم سيئة."},
		{rubric.CompetencyTeamBuilding, "I address conflict in my team early and directly.", "أعالج النزاعات في فريقي مبكراً وبشكل مباشر."},
		{rubric.CompetencyTeamBuilding, "Team members trust each other enough to disagree openly.", "يثق أعضاء الفريق ببعضهم بما يكفي للاختلاف علناً."},
		{rubric.CompetencyIntegrity, "I keep my commitments or renegotiate them explicitly.", "ألتزم بتعهداتي أو أعيد التفاوض عليها صراحة."},
		{rubric.CompetencyIntegrity, "I admit my mistakes in front of the team.", "أعترف بأخطائي أمام الفريق."},
		{rubric.CompetencyAdaptability, "I stay effective when priorities change suddenly.", "أحافظ على فاعليتي عندما تتغير الأولويات فجأة."},
		{rubric.CompetencyAdaptability, "I treat setbacks as information, not as failure.", "أتعامل مع الانتكاسات كمعلومات لا كفشل."},
		{rubric.CompetencyEmpowerment, "I delegate meaningful work, not just routine tasks.", "أفوّض أعمالاً ذات قيمة لا مهاماً روتينية فقط."},
		{rubric.CompetencyEmpowerment, "I let people solve problems their own way.", "أترك الأفراد يحلون المشكلات بطريقتهم."},
		{rubric.CompetencyEmotionalIntelligence, "I notice when someone on the team is struggling before they say so.", "ألاحظ متى يعاني أحد أعضاء الفريق قبل أن يصرح بذلك."},
		{rubric.CompetencyEmotionalIntelligence, "I manage my own reactions under pressure.", "أتحكم في ردود أفعالي تحت الضغط."},
	}

	questions := make([]model.Question, 0, len(statements))
	for i, s := range statements {
		questions = append(questions, model.Question{
			Key:        "Q" + strconv.Itoa(i+1),
			Competency: string(s.competency),
			Prompt:     model.LocalizedText{EN: s.en, AR: s.ar},
		})
	}
	return questions
}
