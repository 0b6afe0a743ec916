package analysis

import "github.com/kanoonsathi/legal-ai-backend/internal/core/domain"

// The analysis bodies are fixed, hand-authored text per document type.
// They deliberately interpolate nothing from the input document; the
// phrasebook fallback translator keys on these exact sentences.

const contractTemplate = `This document appears to be a legal contract. Here's a detailed analysis:

1. Contract Structure and Validity:
   - The document contains standard contractual elements including parties' details, consideration clauses, terms of agreement, and signature requirements.
   - The agreement appears to establish legally binding obligations between the parties under contract law principles.

2. Key Legal Provisions:
   - Terms and conditions governing the relationship between parties are outlined with specific performance requirements.
   - Liability provisions and risk allocation measures are included to protect the parties' interests.
   - Termination mechanisms and conditions for contract renewal are specified.

3. Rights and Obligations:
   - The respective duties of each party are delineated with specific performance metrics and timelines.
   - Compliance requirements with relevant laws and regulations are established.
   - Remedy mechanisms in case of breach are provided with specific consequences.

4. Legal Implications:
   - The contract creates legally enforceable rights that can be upheld through legal proceedings if necessary.
   - Under contract law, material breaches may entitle the non-breaching party to remedies including specific performance or damages.
   - Ambiguous terms may be interpreted by courts according to standard principles of contractual interpretation.`

const judgmentTemplate = `This document appears to be a legal judgment. Here's a detailed analysis:

1. Judicial Findings:
   - The court has ruled on specific legal questions presented in the case with binding authority.
   - The judgment contains findings of fact based on evidence presented and legal conclusions applying relevant law.
   - The court's reasoning demonstrates application of legal principles to the specific circumstances of the case.

2. Legal Reasoning and Precedent:
   - The court applies established legal principles and cites relevant statutory provisions and case law.
   - The judgment may establish or reinforce legal precedent within the appropriate jurisdiction.
   - The court distinguishes or applies existing case law to develop its reasoning.

3. Relief Granted:
   - The court awards specific remedies or relief to the prevailing party.
   - The judgment specifies any monetary damages, equitable relief, or specific performance required.
   - Terms for enforcement of the judgment are outlined with timeframes for compliance.

4. Appeal Implications:
   - The judgment may be subject to appeal within specified timeframes according to applicable procedural rules.
   - Grounds for potential appeal would typically require identification of errors in law or procedure.
   - The finality of the judgment depends on whether appeal periods have expired.`

const legislationTemplate = `This document appears to be legislation or a statutory instrument. Here's a detailed analysis:

1. Legislative Purpose and Scope:
   - The statute establishes legal rules, rights, and obligations within its defined jurisdiction and subject matter.
   - The legislation identifies its purpose and the public policy objectives it seeks to achieve.
   - Jurisdictional boundaries and application scope are defined, including territorial and temporal limitations.

2. Statutory Provisions:
   - The legislation contains definitional sections establishing key terms and concepts for interpretation.
   - Substantive provisions create rights, obligations, prohibitions, and permissions for affected parties.
   - Administrative mechanisms and procedural requirements for implementation are established.

3. Compliance Requirements:
   - The statute imposes specific compliance obligations on affected individuals, businesses, or organizations.
   - Penalties and enforcement mechanisms for non-compliance are specified with relevant authorities.
   - Transitional provisions may address the relationship between this law and previous legal frameworks.

4. Legal Implications:
   - The legislation may preempt or modify existing common law or statutory provisions in its field.
   - Courts will interpret this legislation according to established principles of statutory interpretation.
   - Constitutional or other higher-order legal principles may affect the interpretation and validity of certain provisions.`

const willTemplate = `This document appears to be a last will and testament. Here's a detailed analysis:

1. Testamentary Capacity and Formalities:
   - The document purports to be a valid will expressing the testator's intentions regarding asset distribution.
   - Formal requirements including signature, witnesses, and attestation clauses appear to be addressed.
   - The testator's capacity at the time of execution is a critical factor for validity.

2. Asset Distribution:
   - Specific bequests allocate particular assets or amounts to named beneficiaries.
   - Residuary clauses address the distribution of remaining assets not specifically bequeathed.
   - Contingent provisions may address scenarios such as beneficiaries predeceasing the testator.

3. Administration Provisions:
   - The will appoints executors/personal representatives with powers to administer the estate.
   - Instructions regarding probate procedures and asset management are provided.
   - Tax considerations and payment of debts and expenses are addressed.

4. Legal Implications:
   - The will becomes effective upon the testator's death and must be submitted for probate.
   - Potential challenges could arise based on capacity, undue influence, fraud, or improper execution.
   - Applicable succession laws may impact the interpretation and implementation of the will's provisions.`

const affidavitTemplate = `This document appears to be an affidavit. Here's a detailed analysis:

1. Purpose and Structure:
   - This sworn statement is made for official legal purposes and carries potential perjury consequences if false.
   - The document identifies the deponent (affiant) and establishes their competence to make the statements.
   - The affidavit follows standard format requirements with proper verification clauses.

2. Factual Assertions:
   - The deponent makes specific factual declarations under oath based on personal knowledge or information and belief.
   - Supporting exhibits or documents may be referenced and incorporated into the affidavit.
   - The statements are made with the understanding of their legal significance in proceedings.

3. Authentication:
   - The affidavit contains notarial or other official authentication verifying the deponent's identity.
   - Proper execution through signature and oath or affirmation is essential to validity.
   - The document follows jurisdictional requirements for affidavit formalities.

4. Legal Implications:
   - The affidavit constitutes evidence that may be used in legal proceedings subject to applicable rules.
   - False statements could expose the deponent to criminal penalties for perjury or false swearing.
   - The affidavit's weight as evidence may depend on factors such as specificity, corroboration, and credibility.`

const noticeTemplate = `This document appears to be a legal notice. Here's a detailed analysis:

1. Purpose and Type:
   - The notice serves to formally inform specific parties of legal rights, obligations, or actions.
   - It establishes formal communication for procedural or substantive legal purposes.
   - The notice type (e.g., demand, statutory, termination) determines its specific legal effect.

2. Content Requirements:
   - The notice identifies relevant parties, subject matter, and the legal basis for the communication.
   - Specific legal requirements for content appear to be addressed based on the notice type.
   - Time-sensitive information and deadlines are stated with appropriate specificity.

3. Service and Delivery:
   - The method of delivery is designed to satisfy legal requirements for effective notice.
   - Documentation of service may be required to establish proper notice was given.
   - Timing requirements for advance notice appear to be addressed.

4. Legal Implications:
   - The notice triggers legal consequences, rights, or obligations specified by relevant law.
   - Failure to respond appropriately may result in default or waiver of certain rights.
   - The notice may be a prerequisite for subsequent legal proceedings or actions.`

const legalOpinionTemplate = `This document appears to be a legal opinion. Here's a detailed analysis:

1. Structure and Purpose:
   - This document provides professional legal analysis on specific questions or scenarios.
   - It identifies the requesting party, relevant facts, and legal questions presented.
   - The opinion serves to guide decision-making based on legal risk assessment.

2. Legal Analysis:
   - The opinion applies relevant statutory provisions, case law, and legal principles to the specific scenario.
   - Alternative interpretations and potential outcomes are evaluated with probability assessments.
   - Legal authorities are cited to support the reasoning and conclusions reached.

3. Risk Assessment:
   - The opinion identifies legal risks, ambiguities, and potential challenges to the proposed course of action.
   - Recommendations for risk mitigation strategies are provided based on the legal analysis.
   - Limitations and assumptions underlying the analysis are explicitly stated.

4. Legal Implications:
   - While the opinion provides guidance, ultimate decision-making responsibility remains with the client.
   - The opinion may establish a basis for the 'advice of counsel' defense in certain circumstances.
   - The analysis is time-specific and subject to change based on legal developments or factual changes.`

const mouTemplate = `This document appears to be a Memorandum of Understanding (MOU). Here's a detailed analysis:

1. Nature and Enforceability:
   - This document establishes a preliminary framework for a relationship between the parties.
   - The MOU may contain both binding and non-binding provisions depending on specific language used.
   - Its enforceability depends on whether essential elements of a contract are present and the parties' intent.

2. Key Components:
   - The document outlines the parties' shared understanding and objectives for potential collaboration.
   - Preliminary terms, responsibilities, and contributions of each party are identified.
   - The framework for developing a formal agreement may be established with timelines.

3. Limitations and Conditions:
   - Conditional language may limit legal obligations pending further negotiation or due diligence.
   - Confidentiality provisions and intellectual property protections may be legally binding.
   - Termination provisions outline how parties may exit the preliminary relationship.

4. Legal Implications:
   - Courts may enforce certain provisions if they demonstrate the parties' intent to be bound.
   - Even if not fully enforceable, the MOU may create liability under doctrines such as promissory estoppel if relied upon.
   - The MOU may establish good faith negotiation obligations toward a definitive agreement.`

const genericTemplate = `This appears to be a legal document. Based on the content, here's a general analysis:

1. Key points covered in the document include agreements between parties, obligations, rights, and potential legal implications.

2. For a comprehensive understanding, I recommend consulting with a legal professional specialized in this area of law to interpret the specific implications for your situation.

3. Before taking any action based on this document, ensure that you understand all terms and conditions, as legal documents often contain nuanced language with significant legal consequences.`

var templates = map[domain.DocumentType]string{
	domain.TypeContract:     contractTemplate,
	domain.TypeJudgment:     judgmentTemplate,
	domain.TypeLegislation:  legislationTemplate,
	domain.TypeWill:         willTemplate,
	domain.TypeAffidavit:    affidavitTemplate,
	domain.TypeNotice:       noticeTemplate,
	domain.TypeLegalOpinion: legalOpinionTemplate,
	domain.TypeMOU:          mouTemplate,
}
