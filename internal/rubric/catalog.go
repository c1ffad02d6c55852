package rubric

// Default returns the built-in leadership rubric. Callers should Validate()
// once at startup before serving traffic.
func Default() *Catalog {
	return &Catalog{
		entries: map[Competency]Entry{
			CompetencyVision: {
				EN: Text{
					Name:        "Vision & Strategic Thinking",
					Description: "Sets a clear direction, anticipates change and aligns the team around long-term goals.",
				},
				AR: Text{
					Name:        "الرؤية والتفكير الاستراتيجي",
					Description: "يحدد اتجاهاً واضحاً، ويستبق التغيير، ويوحّد الفريق حول الأهداف طويلة المدى.",
				},
			},
			CompetencyCommunication: {
				EN: Text{
					Name:        "Communication",
					Description: "Conveys ideas clearly, listens actively and keeps stakeholders informed.",
				},
				AR: Text{
					Name:        "التواصل",
					Description: "ينقل الأفكار بوضوح، ويستمع بفاعلية، ويبقي أصحاب المصلحة على اطلاع.",
				},
			},
			CompetencyDecisionMaking: {
				EN: Text{
					Name:        "Decision Making",
					Description: "Weighs evidence and risk, decides in time and owns the outcome.",
				},
				AR: Text{
					Name:        "اتخاذ القرار",
					Description: "يوازن بين الأدلة والمخاطر، ويتخذ القرار في الوقت المناسب، ويتحمل نتائجه.",
				},
			},
			CompetencyTeamBuilding: {
				EN: Text{
					Name:        "Team Building",
					Description: "Builds trust, resolves conflict and creates conditions for collective performance.",
				},
				AR: Text{
					Name:        "بناء الفريق",
					Description: "يبني الثقة، ويحل النزاعات، ويهيئ الظروف للأداء الجماعي.",
				},
			},
			CompetencyIntegrity: {
				EN: Text{
					Name:        "Integrity & Accountability",
					Description: "Acts consistently with stated values and holds self and others accountable.",
				},
				AR: Text{
					Name:        "النزاهة والمساءلة",
					Description: "يتصرف بما يتفق مع القيم المعلنة ويحاسب نفسه والآخرين.",
				},
			},
			CompetencyAdaptability: {
				EN: Text{
					Name:        "Adaptability",
					Description: "Stays effective under ambiguity and leads the team through change.",
				},
				AR: Text{
					Name:        "المرونة والتكيف",
					Description: "يحافظ على فاعليته في ظل الغموض ويقود الفريق خلال التغيير.",
				},
			},
			CompetencyEmpowerment: {
				EN: Text{
					Name:        "Delegation & Empowerment",
					Description: "Delegates meaningful work, develops people and removes obstacles.",
				},
				AR: Text{
					Name:        "التفويض والتمكين",
					Description: "يفوّض مهاماً ذات قيمة، ويطوّر الأفراد، ويزيل العقبات.",
				},
			},
			CompetencyEmotionalIntelligence: {
				EN: Text{
					Name:        "Emotional Intelligence",
					Description: "Understands own and others' emotions and uses that awareness to lead.",
				},
				AR: Text{
					Name:        "الذكاء العاطفي",
					Description: "يفهم مشاعره ومشاعر الآخرين ويوظف هذا الوعي في القيادة.",
				},
			},
		},
		templates: map[Competency]Template{
			CompetencyVision: {
				EN: []string{
					"Write a one-page vision statement for your team and review it with a mentor",
					"Run a quarterly strategy session that links daily work to long-term goals",
					"Study one industry trend per month and share the implications with your team",
					"Define three measurable strategic objectives for the next six months",
				},
				AR: []string{
					"اكتب بيان رؤية من صفحة واحدة لفريقك وراجعه مع مرشد",
					"نظّم جلسة استراتيجية ربع سنوية تربط العمل اليومي بالأهداف طويلة المدى",
					"ادرس توجهاً واحداً في القطاع شهرياً وشارك تأثيراته مع فريقك",
					"حدد ثلاثة أهداف استراتيجية قابلة للقياس للأشهر الستة القادمة",
				},
			},
			CompetencyCommunication: {
				EN: []string{
					"Hold short weekly one-on-ones focused on listening rather than reporting",
					"Practice summarizing complex topics in three sentences before presenting them",
					"Ask for feedback on your communication style from two colleagues",
					"Prepare key messages in advance for every team announcement",
				},
				AR: []string{
					"اعقد لقاءات فردية قصيرة أسبوعياً تركز على الاستماع لا على التقارير",
					"تدرّب على تلخيص المواضيع المعقدة في ثلاث جمل قبل عرضها",
					"اطلب ملاحظات حول أسلوب تواصلك من زميلين",
					"جهّز الرسائل الأساسية مسبقاً قبل كل إعلان للفريق",
				},
			},
			CompetencyDecisionMaking: {
				EN: []string{
					"Use a simple decision log: record the decision, options considered and expected outcome",
					"Set explicit deadlines for decisions and stick to them",
					"For major decisions, consult one person who is likely to disagree",
					"Review past decisions monthly and note what you would change",
				},
				AR: []string{
					"استخدم سجل قرارات بسيطاً: دوّن القرار والخيارات المدروسة والنتيجة المتوقعة",
					"حدد مواعيد نهائية واضحة للقرارات والتزم بها",
					"في القرارات الكبرى، استشر شخصاً يُرجَّح أن يخالفك الرأي",
					"راجع قراراتك السابقة شهرياً ودوّن ما كنت ستغيره",
				},
			},
			CompetencyTeamBuilding: {
				EN: []string{
					"Map each team member's strengths and assign work that uses them",
					"Address one simmering conflict directly within the next two weeks",
					"Establish a recurring team ritual that celebrates shared wins",
					"Rotate meeting facilitation across the team to build ownership",
				},
				AR: []string{
					"حدد نقاط قوة كل عضو في الفريق وأسند المهام التي تستثمرها",
					"عالج نزاعاً واحداً قائماً بشكل مباشر خلال الأسبوعين القادمين",
					"أنشئ عادة دورية للفريق تحتفي بالإنجازات المشتركة",
					"ناوب إدارة الاجتماعات بين أعضاء الفريق لتعزيز الشعور بالملكية",
				},
			},
			CompetencyIntegrity: {
				EN: []string{
					"State commitments publicly and review them with the team each month",
					"When a mistake happens, model ownership before assigning causes",
					"Define the non-negotiable values for your team and write them down",
					"Follow up on every promise within the agreed time or renegotiate it explicitly",
				},
				AR: []string{
					"أعلن التزاماتك أمام الفريق وراجعها معهم شهرياً",
					"عند وقوع خطأ، كن قدوة في تحمل المسؤولية قبل البحث عن الأسباب",
					"حدد القيم غير القابلة للتفاوض لفريقك واكتبها",
					"تابع كل وعد ضمن الوقت المتفق عليه أو أعد التفاوض عليه صراحة",
				},
			},
			CompetencyAdaptability: {
				EN: []string{
					"Identify one process you defend out of habit and experiment with changing it",
					"Prepare a plan B for your top two initiatives",
					"Debrief after every unexpected setback: what signal did we miss?",
					"Seek one assignment outside your comfort zone this quarter",
				},
				AR: []string{
					"حدد إجراءً واحداً تدافع عنه بحكم العادة وجرّب تغييره",
					"أعدّ خطة بديلة لأهم مبادرتين لديك",
					"بعد كل انتكاسة مفاجئة راجع الموقف: ما الإشارة التي فاتتنا؟",
					"اطلب مهمة واحدة خارج منطقة راحتك هذا الربع",
				},
			},
			CompetencyEmpowerment: {
				EN: []string{
					"Delegate one significant responsibility with clear authority, not just tasks",
					"Replace two status check-ins with coaching conversations",
					"Agree development goals with each direct report and revisit them quarterly",
					"Resist solving a problem a team member can solve; ask questions instead",
				},
				AR: []string{
					"فوّض مسؤولية واحدة مهمة مع صلاحيات واضحة، لا مهاماً فقط",
					"استبدل اجتماعي متابعة بجلستي توجيه وتطوير",
					"اتفق مع كل مرؤوس مباشر على أهداف تطويرية وراجعها ربع سنوياً",
					"قاوم حل مشكلة يستطيع أحد أعضاء الفريق حلها؛ اطرح أسئلة بدلاً من ذلك",
				},
			},
			CompetencyEmotionalIntelligence: {
				EN: []string{
					"Pause before reacting to charged situations; name the emotion first",
					"Check in on workload and morale, not only deliverables",
					"Keep a journal of situations that triggered strong reactions and review weekly",
					"Practice acknowledging others' perspectives before presenting your own",
				},
				AR: []string{
					"توقف قبل الرد في المواقف المشحونة؛ سمِّ الشعور أولاً",
					"اسأل عن ضغط العمل والروح المعنوية، لا عن المخرجات فقط",
					"دوّن المواقف التي أثارت ردود فعل قوية لديك وراجعها أسبوعياً",
					"تدرّب على الإقرار بوجهات نظر الآخرين قبل عرض وجهة نظرك",
				},
			},
		},
		defaultTemplate: Template{
			EN: []string{
				"Ask a trusted colleague for specific feedback in this area",
				"Set one measurable improvement goal for the next 30 days",
				"Find a book or course on this topic and block time for it weekly",
				"Identify a role model who excels here and observe how they work",
			},
			AR: []string{
				"اطلب من زميل موثوق ملاحظات محددة في هذا الجانب",
				"ضع هدف تحسين واحداً قابلاً للقياس للثلاثين يوماً القادمة",
				"ابحث عن كتاب أو دورة في هذا الموضوع وخصص له وقتاً أسبوعياً",
				"حدد قدوة تتميز في هذا الجانب وراقب طريقة عملها",
			},
		},
		scaleEN: [5]string{
			"Strongly disagree",
			"Disagree",
			"Neutral",
			"Agree",
			"Strongly agree",
		},
		scaleAR: [5]string{
			"أعارض بشدة",
			"أعارض",
			"محايد",
			"أوافق",
			"أوافق بشدة",
		},
	}
}
